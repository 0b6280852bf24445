package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/projecttasks/backend/config"
	"github.com/projecttasks/backend/pkg/helpers"
)

// Seeds a demo user with one project and a few tasks for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (full_name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, "Demo User", email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", userID, email, password)

	var projectID int64
	err = db.QueryRow(`
		INSERT INTO projects (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, "Getting Started", "A sample project with a few tasks", userID).Scan(&projectID)
	if err != nil {
		log.Fatalf("failed to seed project: %v", err)
	}
	fmt.Printf("seeded project: id=%d\n", projectID)

	tasks := []struct {
		title     string
		completed bool
	}{
		{"Read the API docs", true},
		{"Create your first project", false},
		{"Invite your future self to finish this list", false},
	}
	for _, t := range tasks {
		if _, err := db.Exec(`
			INSERT INTO tasks (title, description, completed, project_id)
			VALUES ($1, '', $2, $3)
		`, t.title, t.completed, projectID); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
	}
	fmt.Printf("seeded %d tasks\n", len(tasks))
}
