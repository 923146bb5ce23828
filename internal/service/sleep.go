package service

import (
	"context"
	"fmt"

	"github.com/avolkova/kidtrack/internal/models"
)

// SleepRepository defines the persistence operations required by the sleep
// service.
type SleepRepository interface {
	CreateSleepEntry(ctx context.Context, entry models.SleepEntry) (models.SleepEntry, error)
	// SleepEntriesByChild returns entries ordered by date descending.
	SleepEntriesByChild(ctx context.Context, childID string) ([]models.SleepEntry, error)
}

// SleepService implements sleep log operations with the same child ownership
// rules as medications.
type SleepService struct {
	repo     SleepRepository
	children ChildRepository
}

// NewSleepService constructs a new SleepService.
func NewSleepService(repo SleepRepository, children ChildRepository) *SleepService {
	return &SleepService{repo: repo, children: children}
}

// AddSleepEntry validates the payload, checks child ownership and persists a
// new sleep entry.
func (s *SleepService) AddSleepEntry(ctx context.Context, callerID string, in models.SleepInput) (models.SleepEntry, error) {
	entry, err := in.Parse()
	if err != nil {
		return models.SleepEntry{}, err
	}
	if entry.UserID != callerID {
		return models.SleepEntry{}, ErrForbidden
	}
	if err := ownedChild(ctx, s.children, callerID, entry.ChildID); err != nil {
		return models.SleepEntry{}, err
	}

	created, err := s.repo.CreateSleepEntry(ctx, entry)
	if err != nil {
		return models.SleepEntry{}, fmt.Errorf("add sleep entry: %w", err)
	}
	return created, nil
}

// SleepEntriesByChild lists the sleep entries for childID, newest date first.
func (s *SleepService) SleepEntriesByChild(ctx context.Context, callerID, childID string) ([]models.SleepEntry, error) {
	if childID == "" {
		return nil, models.ValidationError("Child ID is required")
	}
	if err := ownedChild(ctx, s.children, callerID, childID); err != nil {
		return nil, err
	}

	entries, err := s.repo.SleepEntriesByChild(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("sleep entries by child: %w", err)
	}
	return entries, nil
}
