package store

import (
	"context"
	"database/sql"

	"github.com/fittrack/apiserver/types"
)

// WorkoutRepository handles persistence for workout exercises.
type WorkoutRepository struct {
	repo *Repository[types.WorkoutExercise]
}

func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	mapper := Mapper[types.WorkoutExercise]{
		Table:   "workout_exercises",
		Columns: []string{"id", "description", "exercise_id", "sets", "repetitions", "weight", "status"},
		Scan: func(row rowScanner) (types.WorkoutExercise, error) {
			var workout types.WorkoutExercise
			var description sql.NullString
			var weight sql.NullFloat64
			var status string
			if err := row.Scan(
				&workout.ID,
				&description,
				&workout.ExerciseID,
				&workout.Sets,
				&workout.Repetitions,
				&weight,
				&status,
			); err != nil {
				return types.WorkoutExercise{}, err
			}
			workout.Description = description.String
			workout.Weight = weight.Float64
			workout.Status = types.WorkoutStatus(status)
			return workout, nil
		},
	}
	return &WorkoutRepository{repo: NewRepository(db, mapper)}
}

func (r *WorkoutRepository) List(ctx context.Context, skip, limit int) ([]types.WorkoutExercise, error) {
	return r.repo.List(ctx, skip, limit)
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id int) (types.WorkoutExercise, bool, error) {
	return r.repo.GetByID(ctx, id)
}

// ListByExercise returns every workout entry for the given exercise.
func (r *WorkoutRepository) ListByExercise(ctx context.Context, exerciseID int) ([]types.WorkoutExercise, error) {
	return r.repo.GetAllBy(ctx, "exercise_id", exerciseID)
}

func (r *WorkoutRepository) Create(ctx context.Context, workout types.WorkoutExercise) (types.WorkoutExercise, error) {
	return r.repo.Create(ctx, Fields{
		"description": workout.Description,
		"exercise_id": workout.ExerciseID,
		"sets":        workout.Sets,
		"repetitions": workout.Repetitions,
		"weight":      workout.Weight,
		"status":      string(workout.Status),
	})
}

func (r *WorkoutRepository) Update(ctx context.Context, id int, patch types.WorkoutExercisePatch) (types.WorkoutExercise, bool, error) {
	fields := Fields{}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.ExerciseID != nil {
		fields["exercise_id"] = *patch.ExerciseID
	}
	if patch.Sets != nil {
		fields["sets"] = *patch.Sets
	}
	if patch.Repetitions != nil {
		fields["repetitions"] = *patch.Repetitions
	}
	if patch.Weight != nil {
		fields["weight"] = *patch.Weight
	}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}
	return r.repo.Update(ctx, id, fields)
}

func (r *WorkoutRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.repo.Delete(ctx, id)
}
