package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fittrack/apiserver/types"
)

// MuscleGroupRepository handles persistence for muscle groups.
type MuscleGroupRepository struct {
	repo *Repository[types.MuscleGroup]
}

func NewMuscleGroupRepository(db *sql.DB) *MuscleGroupRepository {
	mapper := Mapper[types.MuscleGroup]{
		Table:   "muscle_group",
		Columns: []string{"id", "name", "description"},
		Scan: func(row rowScanner) (types.MuscleGroup, error) {
			var group types.MuscleGroup
			var description sql.NullString
			if err := row.Scan(&group.ID, &group.Name, &description); err != nil {
				return types.MuscleGroup{}, err
			}
			group.Description = description.String
			return group, nil
		},
	}
	return &MuscleGroupRepository{repo: NewRepository(db, mapper)}
}

func (r *MuscleGroupRepository) List(ctx context.Context, skip, limit int) ([]types.MuscleGroup, error) {
	return r.repo.List(ctx, skip, limit)
}

func (r *MuscleGroupRepository) GetByID(ctx context.Context, id int) (types.MuscleGroup, bool, error) {
	return r.repo.GetByID(ctx, id)
}

func (r *MuscleGroupRepository) GetByName(ctx context.Context, name string) (types.MuscleGroup, bool, error) {
	return r.repo.GetBy(ctx, "name", name)
}

// Create inserts the group. The unique index on name is the final
// arbiter of duplicates; violations come back as ErrDuplicate.
func (r *MuscleGroupRepository) Create(ctx context.Context, group types.MuscleGroup) (types.MuscleGroup, error) {
	created, err := r.repo.Create(ctx, Fields{
		"name":        group.Name,
		"description": group.Description,
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return types.MuscleGroup{}, fmt.Errorf("muscle group %q: %w", group.Name, ErrDuplicate)
		}
		return types.MuscleGroup{}, err
	}
	return created, nil
}

func (r *MuscleGroupRepository) Update(ctx context.Context, id int, patch types.MuscleGroupPatch) (types.MuscleGroup, bool, error) {
	fields := Fields{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	updated, ok, err := r.repo.Update(ctx, id, fields)
	if err != nil && IsUniqueViolation(err) {
		return types.MuscleGroup{}, false, fmt.Errorf("muscle group name: %w", ErrDuplicate)
	}
	return updated, ok, err
}

func (r *MuscleGroupRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.repo.Delete(ctx, id)
}
