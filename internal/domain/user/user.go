package user

import (
	"context"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

type User struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Role     Role      `json:"role"`
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	// FindByEmail matches case-insensitively; storage keeps the original
	// casing.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// List returns every user with the password column left unselected.
	List(ctx context.Context) ([]*User, error)
}
