package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/apiserver/internal/services"
	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// ExerciseHandler provides CRUD endpoints for exercises.
type ExerciseHandler struct {
	service *services.ExerciseService
}

func NewExerciseHandler(service *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// ExerciseRouter registers exercise routes on the given router.
func ExerciseRouter(r chi.Router, service *services.ExerciseService) {
	handler := NewExerciseHandler(service)

	r.Get("/", handler.List)
	r.Post("/", handler.Create)
	r.Route("/{exerciseID}", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Put("/", handler.Update)
		r.Patch("/", handler.PartialUpdate)
		r.Delete("/", handler.Delete)
	})
}

// List returns exercises, optionally filtered by category_id or
// muscle_group_id.
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	if raw := strings.TrimSpace(r.URL.Query().Get("category_id")); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil || categoryID < 1 {
			writeError(w, http.StatusBadRequest, "invalid category_id")
			return
		}
		exercises, err := h.service.ListByCategory(r.Context(), categoryID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list exercises")
			return
		}
		writeJSON(w, http.StatusOK, exercises)
		return
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("muscle_group_id")); raw != "" {
		muscleGroupID, err := strconv.Atoi(raw)
		if err != nil || muscleGroupID < 1 {
			writeError(w, http.StatusBadRequest, "invalid muscle_group_id")
			return
		}
		exercises, err := h.service.ListByMuscleGroup(r.Context(), muscleGroupID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list exercises")
			return
		}
		writeJSON(w, http.StatusOK, exercises)
		return
	}

	skip, limit, err := parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exercises, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list exercises")
		return
	}

	writeJSON(w, http.StatusOK, exercises)
}

func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "exerciseID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exercise, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "exercise not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch exercise")
		return
	}

	writeJSON(w, http.StatusOK, exercise)
}

func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ExerciseUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.CategoryID < 1 || req.MuscleGroupID < 1 {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	exercise, err := h.service.Create(r.Context(), types.Exercise{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		MuscleGroupID: req.MuscleGroupID,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest, "exercise already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create exercise")
		return
	}

	writeJSON(w, http.StatusCreated, exercise)
}

func (h *ExerciseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "exerciseID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ExerciseUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.CategoryID < 1 || req.MuscleGroupID < 1 {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	patch := types.ExercisePatch{
		Name:          &req.Name,
		Description:   &req.Description,
		CategoryID:    &req.CategoryID,
		MuscleGroupID: &req.MuscleGroupID,
	}
	h.applyPatch(w, r, id, patch)
}

func (h *ExerciseHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "exerciseID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch types.ExercisePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.applyPatch(w, r, id, patch)
}

func (h *ExerciseHandler) applyPatch(w http.ResponseWriter, r *http.Request, id int, patch types.ExercisePatch) {
	exercise, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "exercise not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update exercise")
		return
	}

	writeJSON(w, http.StatusOK, exercise)
}

func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "exerciseID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "exercise not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete exercise")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ExerciseUpsertRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	CategoryID    int    `json:"category_id"`
	MuscleGroupID int    `json:"muscle_group_id"`
}
