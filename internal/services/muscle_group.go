package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// MuscleGroupRepository defines persistence operations for muscle groups.
type MuscleGroupRepository interface {
	List(ctx context.Context, skip, limit int) ([]types.MuscleGroup, error)
	GetByID(ctx context.Context, id int) (types.MuscleGroup, bool, error)
	GetByName(ctx context.Context, name string) (types.MuscleGroup, bool, error)
	Create(ctx context.Context, group types.MuscleGroup) (types.MuscleGroup, error)
	Update(ctx context.Context, id int, patch types.MuscleGroupPatch) (types.MuscleGroup, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// MuscleGroupService encapsulates muscle-group use-cases.
type MuscleGroupService struct {
	repo     MuscleGroupRepository
	maxLimit int
}

func NewMuscleGroupService(repo MuscleGroupRepository, maxLimit int) *MuscleGroupService {
	return &MuscleGroupService{repo: repo, maxLimit: maxLimit}
}

func (s *MuscleGroupService) List(ctx context.Context, skip, limit int) ([]types.MuscleGroup, error) {
	return s.repo.List(ctx, skip, clampLimit(limit, s.maxLimit))
}

func (s *MuscleGroupService) Get(ctx context.Context, id int) (types.MuscleGroup, error) {
	group, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.MuscleGroup{}, err
	}
	if !exists {
		return types.MuscleGroup{}, fmt.Errorf("muscle group %d: %w", id, store.ErrNotFound)
	}
	return group, nil
}

// Create inserts a new group after a duplicate-name pre-check. The
// unique index on name catches racing inserts.
func (s *MuscleGroupService) Create(ctx context.Context, name, description string) (types.MuscleGroup, error) {
	_, exists, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return types.MuscleGroup{}, err
	}
	if exists {
		return types.MuscleGroup{}, fmt.Errorf("muscle group %q: %w", name, ErrAlreadyExists)
	}

	created, err := s.repo.Create(ctx, types.MuscleGroup{Name: name, Description: description})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return types.MuscleGroup{}, fmt.Errorf("muscle group %q: %w", name, ErrAlreadyExists)
		}
		return types.MuscleGroup{}, err
	}
	return created, nil
}

func (s *MuscleGroupService) Update(ctx context.Context, id int, patch types.MuscleGroupPatch) (types.MuscleGroup, error) {
	group, exists, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return types.MuscleGroup{}, err
	}
	if !exists {
		return types.MuscleGroup{}, fmt.Errorf("muscle group %d: %w", id, store.ErrNotFound)
	}
	return group, nil
}

func (s *MuscleGroupService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("muscle group %d: %w", id, store.ErrNotFound)
	}
	return nil
}
