package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/canchaleconte/cancha-api/internal/logger"
	"github.com/canchaleconte/cancha-api/internal/models"
	"github.com/canchaleconte/cancha-api/internal/password"
	"github.com/canchaleconte/cancha-api/internal/repositories"
)

// seedadmin creates or updates an admin user. It is meant to be run once
// against a fresh database, or again whenever a password reset is needed:
// the upsert is keyed by email, so rerunning it is safe.
func main() {
	configPath := flag.String("c", "config.env", "path to .env config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "seedadmin:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fallback
	}

	pgHost := getEnv("POSTGRES_HOST", "localhost")
	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}
	pgUser := getEnv("POSTGRES_USER", "postgres")
	pgPassword := getEnv("POSTGRES_PASSWORD", "postgres")
	pgDB := getEnv("POSTGRES_DB", "cancha")

	email := getEnv("ADMIN_EMAIL", "")
	if email == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	name := getEnv("ADMIN_NAME", "Admin")
	role := getEnv("ADMIN_ROLE", models.RoleAdmin)
	if role != models.RoleAdmin && role != models.RoleViewer {
		return fmt.Errorf("invalid ADMIN_ROLE %q: must be %q or %q", role, models.RoleAdmin, models.RoleViewer)
	}

	if err := logger.Initialize("info"); err != nil {
		return err
	}
	defer logger.Log.Sync()

	plain := getEnv("ADMIN_PASSWORD", "")
	generated := plain == ""
	if generated {
		plain, err = password.GenerateSecure(16)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
	} else if err := password.ValidateStrength(plain); err != nil {
		return fmt.Errorf("ADMIN_PASSWORD rejected: %w", err)
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		pgHost, pgPort, pgUser, pgPassword, pgDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	if err := repositories.NewAdminUserWriteRepository(db).Save(ctx, email, hash, name, role); err != nil {
		return fmt.Errorf("failed to save admin user: %w", err)
	}

	fmt.Printf("Admin user ready: %s (%s)\n", email, role)
	if generated {
		// Shown once; the database only stores the hash.
		fmt.Printf("Generated password: %s\n", plain)
	}
	return nil
}
