package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// WorkoutPlanRepository defines persistence operations for workout plans.
type WorkoutPlanRepository interface {
	List(ctx context.Context, skip, limit int) ([]types.WorkoutPlan, error)
	GetByID(ctx context.Context, id int) (types.WorkoutPlan, bool, error)
	ListByUser(ctx context.Context, userID int) ([]types.WorkoutPlan, error)
	Create(ctx context.Context, plan types.WorkoutPlan) (types.WorkoutPlan, error)
	Update(ctx context.Context, id int, patch types.WorkoutPlanPatch) (types.WorkoutPlan, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// WorkoutPlanService encapsulates workout-plan use-cases.
type WorkoutPlanService struct {
	repo     WorkoutPlanRepository
	maxLimit int
}

func NewWorkoutPlanService(repo WorkoutPlanRepository, maxLimit int) *WorkoutPlanService {
	return &WorkoutPlanService{repo: repo, maxLimit: maxLimit}
}

func (s *WorkoutPlanService) List(ctx context.Context, skip, limit int) ([]types.WorkoutPlan, error) {
	return s.repo.List(ctx, skip, clampLimit(limit, s.maxLimit))
}

// ListForUser returns every plan owned by the given user.
func (s *WorkoutPlanService) ListForUser(ctx context.Context, userID int) ([]types.WorkoutPlan, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *WorkoutPlanService) Get(ctx context.Context, id int) (types.WorkoutPlan, error) {
	plan, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.WorkoutPlan{}, err
	}
	if !exists {
		return types.WorkoutPlan{}, fmt.Errorf("workout plan %d: %w", id, store.ErrNotFound)
	}
	return plan, nil
}

// Create inserts a plan for the owning user. A zero date defaults to
// today.
func (s *WorkoutPlanService) Create(ctx context.Context, plan types.WorkoutPlan) (types.WorkoutPlan, error) {
	if plan.Date.IsZero() {
		now := time.Now()
		year, month, day := now.Date()
		plan.Date = time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	}
	return s.repo.Create(ctx, plan)
}

func (s *WorkoutPlanService) Update(ctx context.Context, id int, patch types.WorkoutPlanPatch) (types.WorkoutPlan, error) {
	plan, exists, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return types.WorkoutPlan{}, err
	}
	if !exists {
		return types.WorkoutPlan{}, fmt.Errorf("workout plan %d: %w", id, store.ErrNotFound)
	}
	return plan, nil
}

func (s *WorkoutPlanService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("workout plan %d: %w", id, store.ErrNotFound)
	}
	return nil
}
