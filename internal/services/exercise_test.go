package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

type fakeExerciseRepo struct {
	exercises map[int]types.Exercise
	nextID    int

	createErr error
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[int]types.Exercise), nextID: 1}
}

func (f *fakeExerciseRepo) List(_ context.Context, skip, limit int) ([]types.Exercise, error) {
	out := make([]types.Exercise, 0, len(f.exercises))
	for id := 1; id < f.nextID; id++ {
		if e, ok := f.exercises[id]; ok {
			out = append(out, e)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeExerciseRepo) GetByID(_ context.Context, id int) (types.Exercise, bool, error) {
	e, ok := f.exercises[id]
	return e, ok, nil
}

func (f *fakeExerciseRepo) GetByName(_ context.Context, name string) (types.Exercise, bool, error) {
	for _, e := range f.exercises {
		if e.Name == name {
			return e, true, nil
		}
	}
	return types.Exercise{}, false, nil
}

func (f *fakeExerciseRepo) ListByCategory(_ context.Context, categoryID int) ([]types.Exercise, error) {
	var out []types.Exercise
	for id := 1; id < f.nextID; id++ {
		if e, ok := f.exercises[id]; ok && e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExerciseRepo) ListByMuscleGroup(_ context.Context, muscleGroupID int) ([]types.Exercise, error) {
	var out []types.Exercise
	for id := 1; id < f.nextID; id++ {
		if e, ok := f.exercises[id]; ok && e.MuscleGroupID == muscleGroupID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExerciseRepo) Create(_ context.Context, exercise types.Exercise) (types.Exercise, error) {
	if f.createErr != nil {
		return types.Exercise{}, f.createErr
	}
	exercise.ID = f.nextID
	f.nextID++
	f.exercises[exercise.ID] = exercise
	return exercise, nil
}

func (f *fakeExerciseRepo) Update(_ context.Context, id int, patch types.ExercisePatch) (types.Exercise, bool, error) {
	e, ok := f.exercises[id]
	if !ok {
		return types.Exercise{}, false, nil
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		e.CategoryID = *patch.CategoryID
	}
	if patch.MuscleGroupID != nil {
		e.MuscleGroupID = *patch.MuscleGroupID
	}
	f.exercises[id] = e
	return e, true, nil
}

func (f *fakeExerciseRepo) Delete(_ context.Context, id int) (bool, error) {
	_, ok := f.exercises[id]
	delete(f.exercises, id)
	return ok, nil
}

func TestExerciseCreateDuplicateName(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo, 100)

	exercise := types.Exercise{Name: "squat", CategoryID: 1, MuscleGroupID: 1}
	if _, err := svc.Create(context.Background(), exercise); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(context.Background(), exercise)
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestExerciseCreateDuplicateRace(t *testing.T) {
	// The pre-insert lookup misses but the unique index fires.
	repo := newFakeExerciseRepo()
	repo.createErr = store.ErrDuplicate
	svc := NewExerciseService(repo, 100)

	_, err := svc.Create(context.Background(), types.Exercise{Name: "squat", CategoryID: 1, MuscleGroupID: 1})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestExerciseListFilters(t *testing.T) {
	repo := newFakeExerciseRepo()
	svc := NewExerciseService(repo, 100)

	seed := []types.Exercise{
		{Name: "squat", CategoryID: 1, MuscleGroupID: 2},
		{Name: "bench", CategoryID: 1, MuscleGroupID: 3},
		{Name: "run", CategoryID: 4, MuscleGroupID: 2},
	}
	for _, e := range seed {
		if _, err := svc.Create(context.Background(), e); err != nil {
			t.Fatalf("Create %q: %v", e.Name, err)
		}
	}

	byCategory, err := svc.ListByCategory(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 exercises in category 1, got %d", len(byCategory))
	}

	byGroup, err := svc.ListByMuscleGroup(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListByMuscleGroup: %v", err)
	}
	if len(byGroup) != 2 {
		t.Fatalf("expected 2 exercises for muscle group 2, got %d", len(byGroup))
	}
}

type fakeMuscleGroupRepo struct {
	groups map[int]types.MuscleGroup
	nextID int

	createErr error
}

func newFakeMuscleGroupRepo() *fakeMuscleGroupRepo {
	return &fakeMuscleGroupRepo{groups: make(map[int]types.MuscleGroup), nextID: 1}
}

func (f *fakeMuscleGroupRepo) List(_ context.Context, skip, limit int) ([]types.MuscleGroup, error) {
	out := make([]types.MuscleGroup, 0, len(f.groups))
	for id := 1; id < f.nextID; id++ {
		if g, ok := f.groups[id]; ok {
			out = append(out, g)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeMuscleGroupRepo) GetByID(_ context.Context, id int) (types.MuscleGroup, bool, error) {
	g, ok := f.groups[id]
	return g, ok, nil
}

func (f *fakeMuscleGroupRepo) GetByName(_ context.Context, name string) (types.MuscleGroup, bool, error) {
	for _, g := range f.groups {
		if g.Name == name {
			return g, true, nil
		}
	}
	return types.MuscleGroup{}, false, nil
}

func (f *fakeMuscleGroupRepo) Create(_ context.Context, group types.MuscleGroup) (types.MuscleGroup, error) {
	if f.createErr != nil {
		return types.MuscleGroup{}, f.createErr
	}
	group.ID = f.nextID
	f.nextID++
	f.groups[group.ID] = group
	return group, nil
}

func (f *fakeMuscleGroupRepo) Update(_ context.Context, id int, patch types.MuscleGroupPatch) (types.MuscleGroup, bool, error) {
	g, ok := f.groups[id]
	if !ok {
		return types.MuscleGroup{}, false, nil
	}
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}
	f.groups[id] = g
	return g, true, nil
}

func (f *fakeMuscleGroupRepo) Delete(_ context.Context, id int) (bool, error) {
	_, ok := f.groups[id]
	delete(f.groups, id)
	return ok, nil
}

func TestMuscleGroupCreateDuplicateRace(t *testing.T) {
	repo := newFakeMuscleGroupRepo()
	repo.createErr = store.ErrDuplicate
	svc := NewMuscleGroupService(repo, 100)

	_, err := svc.Create(context.Background(), "legs", "")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
