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

// MuscleGroupHandler provides CRUD endpoints for muscle groups.
type MuscleGroupHandler struct {
	service *services.MuscleGroupService
}

func NewMuscleGroupHandler(service *services.MuscleGroupService) *MuscleGroupHandler {
	return &MuscleGroupHandler{service: service}
}

// MuscleGroupRouter registers muscle-group routes on the given router.
func MuscleGroupRouter(r chi.Router, service *services.MuscleGroupService) {
	handler := NewMuscleGroupHandler(service)

	r.Get("/", handler.List)
	r.Post("/", handler.Create)
	r.Route("/{muscleGroupID}", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Put("/", handler.Update)
		r.Patch("/", handler.PartialUpdate)
		r.Delete("/", handler.Delete)
	})
}

func (h *MuscleGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	groups, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list muscle groups")
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

func (h *MuscleGroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "muscleGroupID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	group, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "muscle group not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch muscle group")
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *MuscleGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req MuscleGroupUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	group, err := h.service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest, "muscle group already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create muscle group")
		return
	}

	writeJSON(w, http.StatusCreated, group)
}

func (h *MuscleGroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "muscleGroupID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req MuscleGroupUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	patch := types.MuscleGroupPatch{Name: &req.Name, Description: &req.Description}
	h.applyPatch(w, r, id, patch)
}

func (h *MuscleGroupHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "muscleGroupID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch types.MuscleGroupPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.applyPatch(w, r, id, patch)
}

func (h *MuscleGroupHandler) applyPatch(w http.ResponseWriter, r *http.Request, id int, patch types.MuscleGroupPatch) {
	group, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "muscle group not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update muscle group")
		return
	}

	writeJSON(w, http.StatusOK, group)
}

func (h *MuscleGroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "muscleGroupID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "muscle group not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete muscle group")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type MuscleGroupUpsertRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
