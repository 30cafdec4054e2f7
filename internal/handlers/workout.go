package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/apiserver/internal/services"
	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// WorkoutHandler provides CRUD endpoints for workout exercises.
type WorkoutHandler struct {
	service *services.WorkoutService
}

func NewWorkoutHandler(service *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// WorkoutRouter registers workout routes; the whole subtree requires auth.
func WorkoutRouter(r chi.Router, service *services.WorkoutService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewWorkoutHandler(service)

	r.Use(authMiddleware)
	r.Get("/", handler.List)
	r.Post("/", handler.Create)
	r.Route("/{workoutID}", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Put("/", handler.Update)
		r.Patch("/", handler.PartialUpdate)
		r.Delete("/", handler.Delete)
	})
}

func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	workouts, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list workouts")
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "workoutID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "workout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch workout")
		return
	}

	writeJSON(w, http.StatusOK, workout)
}

func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req WorkoutUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.ExerciseID < 1 || req.Sets < 1 || req.Repetitions < 1 {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	workout, err := h.service.Create(r.Context(), types.WorkoutExercise{
		Description: req.Description,
		ExerciseID:  req.ExerciseID,
		Sets:        req.Sets,
		Repetitions: req.Repetitions,
		Weight:      req.Weight,
		Status:      types.WorkoutStatus(strings.TrimSpace(req.Status)),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "invalid workout status")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create workout")
		return
	}

	writeJSON(w, http.StatusCreated, workout)
}

func (h *WorkoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "workoutID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req WorkoutUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.ExerciseID < 1 || req.Sets < 1 || req.Repetitions < 1 {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	status := types.WorkoutStatus(strings.TrimSpace(req.Status))
	patch := types.WorkoutExercisePatch{
		Description: &req.Description,
		ExerciseID:  &req.ExerciseID,
		Sets:        &req.Sets,
		Repetitions: &req.Repetitions,
		Weight:      &req.Weight,
		Status:      &status,
	}
	h.applyPatch(w, r, id, patch)
}

func (h *WorkoutHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "workoutID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch types.WorkoutExercisePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.applyPatch(w, r, id, patch)
}

func (h *WorkoutHandler) applyPatch(w http.ResponseWriter, r *http.Request, id int, patch types.WorkoutExercisePatch) {
	workout, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "workout not found")
		case errors.Is(err, services.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "invalid workout status")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update workout")
		}
		return
	}

	writeJSON(w, http.StatusOK, workout)
}

func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "workoutID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "workout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete workout")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type WorkoutUpsertRequest struct {
	Description string  `json:"description"`
	ExerciseID  int     `json:"exercise_id"`
	Sets        int     `json:"sets"`
	Repetitions int     `json:"repetitions"`
	Weight      float64 `json:"weight"`
	Status      string  `json:"status"`
}
