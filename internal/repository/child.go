package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkova/kidtrack/internal/models"
)

// PostgresChildRepository implements child profile persistence against a
// PostgreSQL database.
type PostgresChildRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresChildRepository creates a new PostgresChildRepository using the
// provided *sql.DB.
func NewPostgresChildRepository(db *sql.DB) *PostgresChildRepository {
	return &PostgresChildRepository{DB: db}
}

// CreateChild inserts a new child profile and returns it with a generated ID.
func (r *PostgresChildRepository) CreateChild(ctx context.Context, child models.Child) (models.Child, error) {
	child.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO children (id, user_id, child_name, birth_date, gender) VALUES ($1, $2, $3, $4, $5)
	`, child.ID, child.UserID, child.ChildName, child.BirthDate, string(child.Gender))
	if err != nil {
		return models.Child{}, fmt.Errorf("CreateChild: %w", err)
	}
	return child, nil
}

// ChildrenByUser fetches all child profiles owned by the given user.
func (r *PostgresChildRepository) ChildrenByUser(ctx context.Context, userID string) ([]models.Child, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, child_name, birth_date, gender FROM children WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("ChildrenByUser: %w", err)
	}
	defer rows.Close()

	children := []models.Child{}
	for rows.Next() {
		var c models.Child
		if err := rows.Scan(&c.ID, &c.UserID, &c.ChildName, &c.BirthDate, &c.Gender); err != nil {
			return nil, fmt.Errorf("ChildrenByUser scan: %w", err)
		}
		children = append(children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ChildrenByUser rows: %w", err)
	}
	return children, nil
}

// ChildByID fetches a single child profile by ID.
// It returns (nil, nil) when no such child exists.
func (r *PostgresChildRepository) ChildByID(ctx context.Context, id string) (*models.Child, error) {
	var c models.Child
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, child_name, birth_date, gender FROM children WHERE id = $1
	`, id).Scan(&c.ID, &c.UserID, &c.ChildName, &c.BirthDate, &c.Gender)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ChildByID: %w", err)
	}
	return &c, nil
}
