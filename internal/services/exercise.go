package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	List(ctx context.Context, skip, limit int) ([]types.Exercise, error)
	GetByID(ctx context.Context, id int) (types.Exercise, bool, error)
	GetByName(ctx context.Context, name string) (types.Exercise, bool, error)
	ListByCategory(ctx context.Context, categoryID int) ([]types.Exercise, error)
	ListByMuscleGroup(ctx context.Context, muscleGroupID int) ([]types.Exercise, error)
	Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error)
	Update(ctx context.Context, id int, patch types.ExercisePatch) (types.Exercise, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ExerciseService encapsulates exercise use-cases.
type ExerciseService struct {
	repo     ExerciseRepository
	maxLimit int
}

func NewExerciseService(repo ExerciseRepository, maxLimit int) *ExerciseService {
	return &ExerciseService{repo: repo, maxLimit: maxLimit}
}

func (s *ExerciseService) List(ctx context.Context, skip, limit int) ([]types.Exercise, error) {
	return s.repo.List(ctx, skip, clampLimit(limit, s.maxLimit))
}

func (s *ExerciseService) ListByCategory(ctx context.Context, categoryID int) ([]types.Exercise, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *ExerciseService) ListByMuscleGroup(ctx context.Context, muscleGroupID int) ([]types.Exercise, error) {
	return s.repo.ListByMuscleGroup(ctx, muscleGroupID)
}

func (s *ExerciseService) Get(ctx context.Context, id int) (types.Exercise, error) {
	exercise, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.Exercise{}, err
	}
	if !exists {
		return types.Exercise{}, fmt.Errorf("exercise %d: %w", id, store.ErrNotFound)
	}
	return exercise, nil
}

// Create inserts a new exercise after a duplicate-name pre-check. The
// unique index on name catches racing inserts.
func (s *ExerciseService) Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error) {
	_, exists, err := s.repo.GetByName(ctx, exercise.Name)
	if err != nil {
		return types.Exercise{}, err
	}
	if exists {
		return types.Exercise{}, fmt.Errorf("exercise %q: %w", exercise.Name, ErrAlreadyExists)
	}

	created, err := s.repo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return types.Exercise{}, fmt.Errorf("exercise %q: %w", exercise.Name, ErrAlreadyExists)
		}
		return types.Exercise{}, err
	}
	return created, nil
}

func (s *ExerciseService) Update(ctx context.Context, id int, patch types.ExercisePatch) (types.Exercise, error) {
	exercise, exists, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return types.Exercise{}, err
	}
	if !exists {
		return types.Exercise{}, fmt.Errorf("exercise %d: %w", id, store.ErrNotFound)
	}
	return exercise, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("exercise %d: %w", id, store.ErrNotFound)
	}
	return nil
}
