package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkova/kidtrack/internal/models"
)

// PostgresSleepRepository implements sleep entry persistence against a
// PostgreSQL database.
type PostgresSleepRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresSleepRepository creates a new PostgresSleepRepository using the
// provided *sql.DB.
func NewPostgresSleepRepository(db *sql.DB) *PostgresSleepRepository {
	return &PostgresSleepRepository{DB: db}
}

// CreateSleepEntry inserts a new sleep entry and returns it with a generated ID.
func (r *PostgresSleepRepository) CreateSleepEntry(ctx context.Context, entry models.SleepEntry) (models.SleepEntry, error) {
	entry.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sleep_entries (id, user_id, child_id, date, sleep_hours, quality)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ID, entry.UserID, entry.ChildID, entry.Date, entry.SleepHours, string(entry.Quality))
	if err != nil {
		return models.SleepEntry{}, fmt.Errorf("CreateSleepEntry: %w", err)
	}
	return entry, nil
}

// SleepEntriesByChild fetches all sleep entries recorded for the given child,
// newest date first. Dates are ISO "YYYY-MM-DD" strings, so lexicographic
// order matches calendar order.
func (r *PostgresSleepRepository) SleepEntriesByChild(ctx context.Context, childID string) ([]models.SleepEntry, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, child_id, date, sleep_hours, quality
		  FROM sleep_entries WHERE child_id = $1 ORDER BY date DESC
	`, childID)
	if err != nil {
		return nil, fmt.Errorf("SleepEntriesByChild: %w", err)
	}
	defer rows.Close()

	entries := []models.SleepEntry{}
	for rows.Next() {
		var e models.SleepEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ChildID, &e.Date, &e.SleepHours, &e.Quality); err != nil {
			return nil, fmt.Errorf("SleepEntriesByChild scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SleepEntriesByChild rows: %w", err)
	}
	return entries, nil
}
