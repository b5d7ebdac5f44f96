package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/snapstream/snapstream-api/internal/application/service"
)

// Seeds the default administrator the legacy deployment shipped with. Run
// once against a fresh database: go run scripts/seed_admin.go
func main() {
	fmt.Println("adding default admin into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@snapstream.io"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "password123"
	}

	verifier := service.NewCredentialVerifier(os.Getenv("CREDENTIAL_SCHEME"))
	stored, err := verifier.Store(adminPassword)
	if err != nil {
		log.Fatalf("cannot prepare credential: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, 'admin')
		ON CONFLICT DO NOTHING
	`
	_, err = pool.Exec(context.Background(), query, uuid.New(), "System Administrator", adminEmail, stored)
	if err != nil {
		log.Fatalf("cannot add admin: %v", err)
	}

	fmt.Printf("added default admin '%s' successfully!\n", adminEmail)
}
