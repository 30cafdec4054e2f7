package services

import (
	"context"
	"fmt"

	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// WorkoutRepository defines persistence operations for workout exercises.
type WorkoutRepository interface {
	List(ctx context.Context, skip, limit int) ([]types.WorkoutExercise, error)
	GetByID(ctx context.Context, id int) (types.WorkoutExercise, bool, error)
	ListByExercise(ctx context.Context, exerciseID int) ([]types.WorkoutExercise, error)
	Create(ctx context.Context, workout types.WorkoutExercise) (types.WorkoutExercise, error)
	Update(ctx context.Context, id int, patch types.WorkoutExercisePatch) (types.WorkoutExercise, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// WorkoutService encapsulates workout-exercise use-cases.
type WorkoutService struct {
	repo     WorkoutRepository
	maxLimit int
}

func NewWorkoutService(repo WorkoutRepository, maxLimit int) *WorkoutService {
	return &WorkoutService{repo: repo, maxLimit: maxLimit}
}

func (s *WorkoutService) List(ctx context.Context, skip, limit int) ([]types.WorkoutExercise, error) {
	return s.repo.List(ctx, skip, clampLimit(limit, s.maxLimit))
}

func (s *WorkoutService) Get(ctx context.Context, id int) (types.WorkoutExercise, error) {
	workout, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.WorkoutExercise{}, err
	}
	if !exists {
		return types.WorkoutExercise{}, fmt.Errorf("workout %d: %w", id, store.ErrNotFound)
	}
	return workout, nil
}

func (s *WorkoutService) Create(ctx context.Context, workout types.WorkoutExercise) (types.WorkoutExercise, error) {
	if workout.Status == "" {
		workout.Status = types.WorkoutToBeStarted
	}
	if !workout.Status.Valid() {
		return types.WorkoutExercise{}, fmt.Errorf("status %q: %w", workout.Status, ErrInvalidStatus)
	}
	return s.repo.Create(ctx, workout)
}

func (s *WorkoutService) Update(ctx context.Context, id int, patch types.WorkoutExercisePatch) (types.WorkoutExercise, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return types.WorkoutExercise{}, fmt.Errorf("status %q: %w", *patch.Status, ErrInvalidStatus)
	}

	workout, exists, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return types.WorkoutExercise{}, err
	}
	if !exists {
		return types.WorkoutExercise{}, fmt.Errorf("workout %d: %w", id, store.ErrNotFound)
	}
	return workout, nil
}

func (s *WorkoutService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("workout %d: %w", id, store.ErrNotFound)
	}
	return nil
}
