package service

import (
	"context"
	"fmt"

	"github.com/avolkova/kidtrack/internal/models"
)

// MedicationRepository defines the persistence operations required by the
// medication service.
type MedicationRepository interface {
	CreateMedication(ctx context.Context, med models.Medication) (models.Medication, error)
	MedicationsByChild(ctx context.Context, childID string) ([]models.Medication, error)
}

// MedicationService implements medication operations. It consults the child
// repository to enforce that every medication references an existing child
// owned by the caller.
type MedicationService struct {
	repo     MedicationRepository
	children ChildRepository
}

// NewMedicationService constructs a new MedicationService.
func NewMedicationService(repo MedicationRepository, children ChildRepository) *MedicationService {
	return &MedicationService{repo: repo, children: children}
}

// AddMedication validates the payload, checks child ownership and persists a
// new medication record.
func (s *MedicationService) AddMedication(ctx context.Context, callerID string, in models.MedicationInput) (models.Medication, error) {
	med, err := in.Parse()
	if err != nil {
		return models.Medication{}, err
	}
	if med.UserID != callerID {
		return models.Medication{}, ErrForbidden
	}
	if err := ownedChild(ctx, s.children, callerID, med.ChildID); err != nil {
		return models.Medication{}, err
	}

	created, err := s.repo.CreateMedication(ctx, med)
	if err != nil {
		return models.Medication{}, fmt.Errorf("add medication: %w", err)
	}
	return created, nil
}

// MedicationsByChild lists the medications recorded for childID. The child
// must exist and belong to the caller; an empty list is a valid result.
func (s *MedicationService) MedicationsByChild(ctx context.Context, callerID, childID string) ([]models.Medication, error) {
	if childID == "" {
		return nil, models.ValidationError("childId is required")
	}
	if err := ownedChild(ctx, s.children, callerID, childID); err != nil {
		return nil, err
	}

	meds, err := s.repo.MedicationsByChild(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("medications by child: %w", err)
	}
	return meds, nil
}
