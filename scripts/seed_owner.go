package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/vere-app/vere/pkg/auth"
)

func main() {
	fmt.Println("adding owner into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerUsername := os.Getenv("OWNER_USERNAME")
	ownerPassword := os.Getenv("OWNER_PASSWORD")

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO users (id, email, username, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (email) DO UPDATE SET password_hash = $4
	`
	_, err = pool.Exec(context.Background(), query, uuid.New(), ownerEmail, ownerUsername, hash)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	fmt.Printf("added or updated owner '%s' successfully!\n", ownerEmail)
}
