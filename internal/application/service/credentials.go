package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier abstracts how passwords are stored and checked so the
// plaintext legacy scheme and a hashed scheme stay interchangeable behind the
// account service.
type CredentialVerifier interface {
	Store(plain string) (string, error)
	Verify(plain, stored string) bool
}

type PlaintextVerifier struct{}

func (PlaintextVerifier) Store(plain string) (string, error) {
	return plain, nil
}

func (PlaintextVerifier) Verify(plain, stored string) bool {
	return plain == stored
}

type BcryptVerifier struct{}

func (BcryptVerifier) Store(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("cannot hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptVerifier) Verify(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// NewCredentialVerifier picks the scheme from config; anything unknown falls
// back to plaintext, which matches the legacy store contents.
func NewCredentialVerifier(scheme string) CredentialVerifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlaintextVerifier{}
}
