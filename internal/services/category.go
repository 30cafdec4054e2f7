package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context, skip, limit int) ([]types.Category, error)
	GetByID(ctx context.Context, id int) (types.Category, bool, error)
	GetByName(ctx context.Context, name string) (types.Category, bool, error)
	Create(ctx context.Context, category types.Category) (types.Category, error)
	Update(ctx context.Context, id int, patch types.CategoryPatch) (types.Category, bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// CategoryService encapsulates category use-cases.
type CategoryService struct {
	repo     CategoryRepository
	maxLimit int
}

func NewCategoryService(repo CategoryRepository, maxLimit int) *CategoryService {
	return &CategoryService{repo: repo, maxLimit: maxLimit}
}

func (s *CategoryService) List(ctx context.Context, skip, limit int) ([]types.Category, error) {
	return s.repo.List(ctx, skip, clampLimit(limit, s.maxLimit))
}

func (s *CategoryService) Get(ctx context.Context, id int) (types.Category, error) {
	category, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.Category{}, err
	}
	if !exists {
		return types.Category{}, fmt.Errorf("category %d: %w", id, store.ErrNotFound)
	}
	return category, nil
}

// Create inserts a new category after a duplicate-name pre-check. The
// unique index on name catches racing inserts.
func (s *CategoryService) Create(ctx context.Context, name, description string) (types.Category, error) {
	_, exists, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return types.Category{}, err
	}
	if exists {
		return types.Category{}, fmt.Errorf("category %q: %w", name, ErrAlreadyExists)
	}

	category, err := s.repo.Create(ctx, types.Category{Name: name, Description: description})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return types.Category{}, fmt.Errorf("category %q: %w", name, ErrAlreadyExists)
		}
		return types.Category{}, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int, patch types.CategoryPatch) (types.Category, error) {
	category, exists, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return types.Category{}, fmt.Errorf("category name: %w", ErrAlreadyExists)
		}
		return types.Category{}, err
	}
	if !exists {
		return types.Category{}, fmt.Errorf("category %d: %w", id, store.ErrNotFound)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("category %d: %w", id, store.ErrNotFound)
	}
	return nil
}
