package testutil

import (
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"placehub/internal/config"
	"placehub/internal/repository"
)

// SetupTestDB connects to the database described by the env file and applies
// migrations. Callers skip DB-backed tests when it returns an error.
func SetupTestDB(envRelPath, migrationsRelPath string) (*sqlx.DB, error) {
	_ = godotenv.Load(envRelPath)
	cfg := config.Load()

	db, err := sqlx.Connect("postgres", repository.DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to test db: %w", err)
	}

	if err = goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set dialect: %w", err)
	}

	if err = goose.Up(db.DB, migrationsRelPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return db, nil
}

func RequireDB(t *testing.T, db *sqlx.DB) {
	t.Helper()
	if db == nil {
		t.Skip("Test database not initialized")
	}
}
