package service

import (
	"context"
	"fmt"

	"github.com/avolkova/kidtrack/internal/models"
)

// ChildRepository defines the persistence operations required by the child
// and the child-referencing services.
type ChildRepository interface {
	CreateChild(ctx context.Context, child models.Child) (models.Child, error)
	ChildrenByUser(ctx context.Context, userID string) ([]models.Child, error)
	// ChildByID fetches a child by ID, (nil, nil) if absent.
	ChildByID(ctx context.Context, id string) (*models.Child, error)
}

// ChildService implements child profile operations.
type ChildService struct {
	repo ChildRepository
}

// NewChildService constructs a new ChildService using the provided repository.
func NewChildService(repo ChildRepository) *ChildService {
	return &ChildService{repo: repo}
}

// AddChild validates the payload and persists a new child profile owned by
// the caller. The payload's userId must match the authenticated caller.
func (s *ChildService) AddChild(ctx context.Context, callerID string, in models.ChildInput) (models.Child, error) {
	child, err := in.Parse()
	if err != nil {
		return models.Child{}, err
	}
	if child.UserID != callerID {
		return models.Child{}, ErrForbidden
	}

	created, err := s.repo.CreateChild(ctx, child)
	if err != nil {
		return models.Child{}, fmt.Errorf("add child: %w", err)
	}
	return created, nil
}

// ChildrenByUser lists the child profiles owned by userID. Callers may only
// list their own children.
func (s *ChildService) ChildrenByUser(ctx context.Context, callerID, userID string) ([]models.Child, error) {
	if userID == "" {
		return nil, models.ValidationError("User ID is required")
	}
	if userID != callerID {
		return nil, ErrForbidden
	}

	children, err := s.repo.ChildrenByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("children by user: %w", err)
	}
	return children, nil
}

// ownedChild resolves childID and checks that it belongs to callerID.
// Shared by the medication and sleep services.
func ownedChild(ctx context.Context, repo ChildRepository, callerID, childID string) error {
	child, err := repo.ChildByID(ctx, childID)
	if err != nil {
		return fmt.Errorf("resolve child: %w", err)
	}
	if child == nil {
		return ErrChildNotFound
	}
	if child.UserID != callerID {
		return ErrForbidden
	}
	return nil
}
