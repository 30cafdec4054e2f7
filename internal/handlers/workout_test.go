package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/apiserver/internal/services"
	"github.com/fittrack/apiserver/types"
)

type memoryWorkoutRepo struct {
	workouts map[int]types.WorkoutExercise
	nextID   int

	// failWith, when set, is returned from every mutation.
	failWith error
}

func newMemoryWorkoutRepo() *memoryWorkoutRepo {
	return &memoryWorkoutRepo{workouts: make(map[int]types.WorkoutExercise), nextID: 1}
}

func (m *memoryWorkoutRepo) List(_ context.Context, skip, limit int) ([]types.WorkoutExercise, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]types.WorkoutExercise, 0, len(m.workouts))
	for id := 1; id < m.nextID; id++ {
		if w, ok := m.workouts[id]; ok {
			out = append(out, w)
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

func (m *memoryWorkoutRepo) GetByID(_ context.Context, id int) (types.WorkoutExercise, bool, error) {
	w, ok := m.workouts[id]
	return w, ok, nil
}

func (m *memoryWorkoutRepo) ListByExercise(_ context.Context, exerciseID int) ([]types.WorkoutExercise, error) {
	var out []types.WorkoutExercise
	for id := 1; id < m.nextID; id++ {
		if w, ok := m.workouts[id]; ok && w.ExerciseID == exerciseID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memoryWorkoutRepo) Create(_ context.Context, workout types.WorkoutExercise) (types.WorkoutExercise, error) {
	if m.failWith != nil {
		return types.WorkoutExercise{}, m.failWith
	}
	workout.ID = m.nextID
	m.nextID++
	m.workouts[workout.ID] = workout
	return workout, nil
}

func (m *memoryWorkoutRepo) Update(_ context.Context, id int, patch types.WorkoutExercisePatch) (types.WorkoutExercise, bool, error) {
	if m.failWith != nil {
		return types.WorkoutExercise{}, false, m.failWith
	}
	w, ok := m.workouts[id]
	if !ok {
		return types.WorkoutExercise{}, false, nil
	}
	if patch.Description != nil {
		w.Description = *patch.Description
	}
	if patch.Sets != nil {
		w.Sets = *patch.Sets
	}
	if patch.Repetitions != nil {
		w.Repetitions = *patch.Repetitions
	}
	if patch.Status != nil {
		w.Status = *patch.Status
	}
	m.workouts[id] = w
	return w, true, nil
}

func (m *memoryWorkoutRepo) Delete(_ context.Context, id int) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	_, ok := m.workouts[id]
	delete(m.workouts, id)
	return ok, nil
}

func newWorkoutTestRouter(t *testing.T, repo services.WorkoutRepository) (*chi.Mux, string) {
	t.Helper()

	codec := newTestCodec(t)
	service := services.NewWorkoutService(repo, 100)

	router := chi.NewRouter()
	router.Route("/workouts", func(r chi.Router) {
		WorkoutRouter(r, service, RequireAuth(codec))
	})

	pair, err := codec.IssuePair(1)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	return router, pair.AccessToken
}

func TestWorkoutCreateAndPatch(t *testing.T) {
	router, token := newWorkoutTestRouter(t, newMemoryWorkoutRepo())

	created := doAuthedRequest(router, http.MethodPost, "/workouts/", token, WorkoutUpsertRequest{
		ExerciseID:  1,
		Sets:        5,
		Repetitions: 5,
		Weight:      100,
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", created.Code, created.Body.String())
	}

	var workout types.WorkoutExercise
	if err := json.NewDecoder(created.Body).Decode(&workout); err != nil {
		t.Fatalf("decode workout: %v", err)
	}
	if workout.Status != types.WorkoutToBeStarted {
		t.Fatalf("expected default status, got %q", workout.Status)
	}

	patched := doAuthedRequest(router, http.MethodPatch, fmt.Sprintf("/workouts/%d", workout.ID), token, map[string]string{
		"status": "completed",
	})
	if patched.Code != http.StatusOK {
		t.Fatalf("patch status = %d: %s", patched.Code, patched.Body.String())
	}
}

func TestWorkoutInvalidStatusRejected(t *testing.T) {
	router, token := newWorkoutTestRouter(t, newMemoryWorkoutRepo())

	rec := doAuthedRequest(router, http.MethodPost, "/workouts/", token, WorkoutUpsertRequest{
		ExerciseID:  1,
		Sets:        3,
		Repetitions: 10,
		Status:      "napping",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("create status = %d, want 400: %s", rec.Code, rec.Body.String())
	}

	created := doAuthedRequest(router, http.MethodPost, "/workouts/", token, WorkoutUpsertRequest{
		ExerciseID:  1,
		Sets:        3,
		Repetitions: 10,
	})
	var workout types.WorkoutExercise
	if err := json.NewDecoder(created.Body).Decode(&workout); err != nil {
		t.Fatalf("decode workout: %v", err)
	}

	bad := doAuthedRequest(router, http.MethodPatch, fmt.Sprintf("/workouts/%d", workout.ID), token, map[string]string{
		"status": "napping",
	})
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("patch status = %d, want 400: %s", bad.Code, bad.Body.String())
	}
}

func TestWorkoutStoreFailureIsOpaque(t *testing.T) {
	repo := newMemoryWorkoutRepo()
	repo.failWith = errors.New(`pq: connection refused on host "db"`)
	router, token := newWorkoutTestRouter(t, repo)

	created := doAuthedRequest(router, http.MethodPost, "/workouts/", token, WorkoutUpsertRequest{
		ExerciseID:  1,
		Sets:        5,
		Repetitions: 5,
	})
	if created.Code != http.StatusInternalServerError {
		t.Fatalf("create status = %d, want 500: %s", created.Code, created.Body.String())
	}
	if strings.Contains(created.Body.String(), "pq:") {
		t.Fatalf("response leaks driver error: %s", created.Body.String())
	}

	patched := doAuthedRequest(router, http.MethodPatch, "/workouts/1", token, map[string]string{
		"description": "x",
	})
	if patched.Code != http.StatusInternalServerError {
		t.Fatalf("patch status = %d, want 500: %s", patched.Code, patched.Body.String())
	}
	if strings.Contains(patched.Body.String(), "pq:") {
		t.Fatalf("response leaks driver error: %s", patched.Body.String())
	}
}
