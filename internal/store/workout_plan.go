package store

import (
	"context"
	"database/sql"

	"github.com/fittrack/apiserver/types"
)

// WorkoutPlanRepository handles persistence for workout plans.
type WorkoutPlanRepository struct {
	repo *Repository[types.WorkoutPlan]
}

func NewWorkoutPlanRepository(db *sql.DB) *WorkoutPlanRepository {
	mapper := Mapper[types.WorkoutPlan]{
		Table:   "workout_plans",
		Columns: []string{"id", "user_id", "date", "comments"},
		Scan: func(row rowScanner) (types.WorkoutPlan, error) {
			var plan types.WorkoutPlan
			var comments sql.NullString
			if err := row.Scan(&plan.ID, &plan.UserID, &plan.Date, &comments); err != nil {
				return types.WorkoutPlan{}, err
			}
			plan.Comments = comments.String
			return plan, nil
		},
	}
	return &WorkoutPlanRepository{repo: NewRepository(db, mapper)}
}

func (r *WorkoutPlanRepository) List(ctx context.Context, skip, limit int) ([]types.WorkoutPlan, error) {
	return r.repo.List(ctx, skip, limit)
}

func (r *WorkoutPlanRepository) GetByID(ctx context.Context, id int) (types.WorkoutPlan, bool, error) {
	return r.repo.GetByID(ctx, id)
}

// ListByUser returns every plan owned by the given user.
func (r *WorkoutPlanRepository) ListByUser(ctx context.Context, userID int) ([]types.WorkoutPlan, error) {
	return r.repo.GetAllBy(ctx, "user_id", userID)
}

func (r *WorkoutPlanRepository) Create(ctx context.Context, plan types.WorkoutPlan) (types.WorkoutPlan, error) {
	return r.repo.Create(ctx, Fields{
		"user_id":  plan.UserID,
		"date":     plan.Date,
		"comments": plan.Comments,
	})
}

func (r *WorkoutPlanRepository) Update(ctx context.Context, id int, patch types.WorkoutPlanPatch) (types.WorkoutPlan, bool, error) {
	fields := Fields{}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Comments != nil {
		fields["comments"] = *patch.Comments
	}
	return r.repo.Update(ctx, id, fields)
}

func (r *WorkoutPlanRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.repo.Delete(ctx, id)
}
