package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fittrack/apiserver/internal/services"
	"github.com/fittrack/apiserver/internal/store"
	"github.com/fittrack/apiserver/types"
)

// WorkoutPlanHandler provides CRUD endpoints for workout plans.
type WorkoutPlanHandler struct {
	service *services.WorkoutPlanService
}

func NewWorkoutPlanHandler(service *services.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{service: service}
}

// WorkoutPlanRouter registers workout-plan routes; the whole subtree
// requires auth.
func WorkoutPlanRouter(r chi.Router, service *services.WorkoutPlanService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewWorkoutPlanHandler(service)

	r.Use(authMiddleware)
	r.Get("/", handler.List)
	r.Post("/", handler.Create)
	r.Route("/{planID}", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Put("/", handler.Update)
		r.Patch("/", handler.PartialUpdate)
		r.Delete("/", handler.Delete)
	})
}

// List returns the plans owned by the authenticated user.
func (h *WorkoutPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	plans, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list workout plans")
		return
	}

	writeJSON(w, http.StatusOK, plans)
}

func (h *WorkoutPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "planID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "workout plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch workout plan")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// Create inserts a plan owned by the authenticated user.
func (h *WorkoutPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req WorkoutPlanUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	plan, err := h.service.Create(r.Context(), types.WorkoutPlan{
		UserID:   userID,
		Date:     req.Date,
		Comments: req.Comments,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create workout plan")
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

func (h *WorkoutPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "planID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req WorkoutPlanUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if req.Date.IsZero() {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	patch := types.WorkoutPlanPatch{Date: &req.Date, Comments: &req.Comments}
	h.applyPatch(w, r, id, patch)
}

func (h *WorkoutPlanHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "planID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch types.WorkoutPlanPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.applyPatch(w, r, id, patch)
}

func (h *WorkoutPlanHandler) applyPatch(w http.ResponseWriter, r *http.Request, id int, patch types.WorkoutPlanPatch) {
	plan, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "workout plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update workout plan")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

func (h *WorkoutPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "planID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "workout plan not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete workout plan")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type WorkoutPlanUpsertRequest struct {
	Date     time.Time `json:"date"`
	Comments string    `json:"comments"`
}
