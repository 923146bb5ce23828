package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL,
    password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS children (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    child_name TEXT NOT NULL,
    birth_date TIMESTAMPTZ NOT NULL,
    gender TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS medications (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    child_id TEXT NOT NULL,
    name TEXT NOT NULL,
    dosage TEXT NOT NULL,
    frequency TEXT NOT NULL,
    course_days INTEGER NOT NULL,
    next_dose TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sleep_entries (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    child_id TEXT NOT NULL,
    date TEXT NOT NULL,
    sleep_hours DOUBLE PRECISION NOT NULL,
    quality TEXT NOT NULL
);
`

// InitPostgres opens a PostgreSQL connection, verifies it and applies the
// schema. Referential integrity between the tables is enforced by the
// service layer, not the database.
func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
