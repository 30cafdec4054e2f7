package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fittrack/apiserver/types"
)

// ExerciseRepository handles persistence for exercises.
type ExerciseRepository struct {
	repo *Repository[types.Exercise]
}

func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	mapper := Mapper[types.Exercise]{
		Table:   "exercises",
		Columns: []string{"id", "name", "description", "category_id", "muscle_group_id"},
		Scan: func(row rowScanner) (types.Exercise, error) {
			var exercise types.Exercise
			var description sql.NullString
			if err := row.Scan(
				&exercise.ID,
				&exercise.Name,
				&description,
				&exercise.CategoryID,
				&exercise.MuscleGroupID,
			); err != nil {
				return types.Exercise{}, err
			}
			exercise.Description = description.String
			return exercise, nil
		},
	}
	return &ExerciseRepository{repo: NewRepository(db, mapper)}
}

func (r *ExerciseRepository) List(ctx context.Context, skip, limit int) ([]types.Exercise, error) {
	return r.repo.List(ctx, skip, limit)
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id int) (types.Exercise, bool, error) {
	return r.repo.GetByID(ctx, id)
}

func (r *ExerciseRepository) GetByName(ctx context.Context, name string) (types.Exercise, bool, error) {
	return r.repo.GetBy(ctx, "name", name)
}

// ListByCategory returns every exercise in the given category.
func (r *ExerciseRepository) ListByCategory(ctx context.Context, categoryID int) ([]types.Exercise, error) {
	return r.repo.GetAllBy(ctx, "category_id", categoryID)
}

// ListByMuscleGroup returns every exercise targeting the given muscle group.
func (r *ExerciseRepository) ListByMuscleGroup(ctx context.Context, muscleGroupID int) ([]types.Exercise, error) {
	return r.repo.GetAllBy(ctx, "muscle_group_id", muscleGroupID)
}

// Create inserts the exercise. The unique index on name is the final
// arbiter of duplicates; violations come back as ErrDuplicate.
func (r *ExerciseRepository) Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error) {
	created, err := r.repo.Create(ctx, Fields{
		"name":            exercise.Name,
		"description":     exercise.Description,
		"category_id":     exercise.CategoryID,
		"muscle_group_id": exercise.MuscleGroupID,
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return types.Exercise{}, fmt.Errorf("exercise %q: %w", exercise.Name, ErrDuplicate)
		}
		return types.Exercise{}, err
	}
	return created, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, id int, patch types.ExercisePatch) (types.Exercise, bool, error) {
	fields := Fields{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.CategoryID != nil {
		fields["category_id"] = *patch.CategoryID
	}
	if patch.MuscleGroupID != nil {
		fields["muscle_group_id"] = *patch.MuscleGroupID
	}

	updated, ok, err := r.repo.Update(ctx, id, fields)
	if err != nil && IsUniqueViolation(err) {
		return types.Exercise{}, false, fmt.Errorf("exercise name: %w", ErrDuplicate)
	}
	return updated, ok, err
}

func (r *ExerciseRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.repo.Delete(ctx, id)
}
