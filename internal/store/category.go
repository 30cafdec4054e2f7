package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fittrack/apiserver/types"
)

// CategoryRepository handles persistence for training categories.
type CategoryRepository struct {
	repo *Repository[types.Category]
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	mapper := Mapper[types.Category]{
		Table:   "category",
		Columns: []string{"id", "name", "description"},
		Scan: func(row rowScanner) (types.Category, error) {
			var category types.Category
			var description sql.NullString
			if err := row.Scan(&category.ID, &category.Name, &description); err != nil {
				return types.Category{}, err
			}
			category.Description = description.String
			return category, nil
		},
	}
	return &CategoryRepository{repo: NewRepository(db, mapper)}
}

func (r *CategoryRepository) List(ctx context.Context, skip, limit int) ([]types.Category, error) {
	return r.repo.List(ctx, skip, limit)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (types.Category, bool, error) {
	return r.repo.GetByID(ctx, id)
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (types.Category, bool, error) {
	return r.repo.GetBy(ctx, "name", name)
}

func (r *CategoryRepository) Create(ctx context.Context, category types.Category) (types.Category, error) {
	created, err := r.repo.Create(ctx, Fields{
		"name":        category.Name,
		"description": category.Description,
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return types.Category{}, fmt.Errorf("category %q: %w", category.Name, ErrDuplicate)
		}
		return types.Category{}, err
	}
	return created, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int, patch types.CategoryPatch) (types.Category, bool, error) {
	fields := Fields{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}

	updated, ok, err := r.repo.Update(ctx, id, fields)
	if err != nil && IsUniqueViolation(err) {
		return types.Category{}, false, fmt.Errorf("category name: %w", ErrDuplicate)
	}
	return updated, ok, err
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.repo.Delete(ctx, id)
}
