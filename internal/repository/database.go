package repository

import (
	"fmt"
	"log"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"placehub/internal/config"
)

type Database struct {
	db *sqlx.DB
}

func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

func New(cfg *config.Config) (*Database, error) {
	driverName, err := otelsql.Register("postgres",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithSpanOptions(otelsql.SpanOptions{
			DisableErrSkip: true,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("register otelsql driver: %w", err)
	}

	db, err := sqlx.Connect(driverName, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxIdleConns(2)
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Database{db: db}, nil
}

// Connect calls New up to cfg.Database.ConnectRetries times, sleeping RetryDelay
// between attempts, and returns the last error once attempts run out.
func Connect(cfg *config.Config) (*Database, error) {
	attempts := cfg.Database.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := New(cfg)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("[Database] connect attempt %d/%d failed: %v", attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(cfg.Database.RetryDelay)
		}
	}

	return nil, fmt.Errorf("connect after %d attempts: %w", attempts, lastErr)
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) DB() *sqlx.DB {
	return d.db
}
