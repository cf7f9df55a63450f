package main

import (
	"database/sql"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"placehub/internal/config"
	"placehub/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	command := flag.String("command", "up", "Migration command: up, down, down-to, status, version, create")
	name := flag.String("name", "", "Migration name (required for create)")
	targetVersion := flag.Int64("version", 0, "Target version for down-to command")
	migrationsDir := flag.String("dir", "migrations", "Migrations directory")
	flag.Parse()

	cfg := config.Load()

	db, err := open(repository.DSN(cfg))
	if err != nil {
		if *command != "up" || !isDatabaseDoesNotExistError(err) {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := createDatabase(cfg); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		if db, err = open(repository.DSN(cfg)); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}

	if err := run(db, *command, *migrationsDir, *name, *targetVersion); err != nil {
		db.Close()
		log.Fatalf("Migration %s failed: %v", *command, err)
	}
}

func run(db *sql.DB, command, dir, name string, target int64) error {
	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return err
		}
		log.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return err
		}
		log.Println("Migrations rolled back successfully")
	case "down-to":
		if err := goose.DownTo(db, dir, target); err != nil {
			return err
		}
		log.Printf("Migrations rolled back to version %d successfully", target)
	case "status":
		return goose.Status(db, dir)
	case "version":
		return goose.Version(db, dir)
	case "create":
		if name == "" {
			return errors.New("migration name is required for create command")
		}
		if err := goose.Create(db, dir, name, "sql"); err != nil {
			return err
		}
		log.Printf("Created migration: %s", name)
	default:
		return errors.New("unknown command: " + command)
	}
	return nil
}

func open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func isDatabaseDoesNotExistError(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "3D000"
}

// createDatabase connects to the maintenance database and creates the
// configured one. An existing database is not an error.
func createDatabase(cfg *config.Config) error {
	admin := *cfg
	admin.Database.Name = "postgres"

	db, err := open(repository.DSN(&admin))
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.Database.Name)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return err
	}

	log.Printf("Database %q created successfully", cfg.Database.Name)
	return nil
}
