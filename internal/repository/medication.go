package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkova/kidtrack/internal/models"
)

// PostgresMedicationRepository implements medication persistence against a
// PostgreSQL database.
type PostgresMedicationRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresMedicationRepository creates a new PostgresMedicationRepository
// using the provided *sql.DB.
func NewPostgresMedicationRepository(db *sql.DB) *PostgresMedicationRepository {
	return &PostgresMedicationRepository{DB: db}
}

// CreateMedication inserts a new medication record and returns it with a
// generated ID.
func (r *PostgresMedicationRepository) CreateMedication(ctx context.Context, med models.Medication) (models.Medication, error) {
	med.ID = uuid.NewString()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO medications (id, user_id, child_id, name, dosage, frequency, course_days, next_dose)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, med.ID, med.UserID, med.ChildID, med.Name, med.Dosage, med.Frequency, med.CourseDays, med.NextDose)
	if err != nil {
		return models.Medication{}, fmt.Errorf("CreateMedication: %w", err)
	}
	return med, nil
}

// MedicationsByChild fetches all medications recorded for the given child,
// in insertion order.
func (r *PostgresMedicationRepository) MedicationsByChild(ctx context.Context, childID string) ([]models.Medication, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, child_id, name, dosage, frequency, course_days, next_dose
		  FROM medications WHERE child_id = $1
	`, childID)
	if err != nil {
		return nil, fmt.Errorf("MedicationsByChild: %w", err)
	}
	defer rows.Close()

	meds := []models.Medication{}
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.ChildID, &m.Name, &m.Dosage, &m.Frequency, &m.CourseDays, &m.NextDose); err != nil {
			return nil, fmt.Errorf("MedicationsByChild scan: %w", err)
		}
		meds = append(meds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("MedicationsByChild rows: %w", err)
	}
	return meds, nil
}
