// Package db opens the task store and applies the embedded migrations.
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Supported database/sql driver names. SQLite is the default for a local
// single-user deployment; Postgres serves a shared one.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DefaultDataDir returns the default data directory path.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskboard"
	}
	return filepath.Join(home, ".local", "share", "taskboard")
}

// DefaultDBPath returns the default sqlite database file path.
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "taskboard.db")
}

// Open connects with the given driver and runs migrations. For sqlite3 the
// DSN is a file path (defaulted if empty) and its directory is created if
// missing; for postgres it is a connection string.
func Open(driver, dsn string) (*sql.DB, error) {
	if driver == DriverSQLite {
		if dsn == "" {
			dsn = DefaultDBPath()
		}
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", dsn)
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == DriverSQLite {
		// SQLite only supports one writer
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(sqlDB, driver); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return sqlDB, nil
}

func migrate(sqlDB *sql.DB, driver string) error {
	// Silence goose logging (it corrupts the board's TUI output)
	goose.SetLogger(log.New(io.Discard, "", 0))
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
