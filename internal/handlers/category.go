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

// CategoryHandler provides CRUD endpoints for training categories.
type CategoryHandler struct {
	service *services.CategoryService
}

func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// CategoryRouter registers category routes on the given router.
func CategoryRouter(r chi.Router, service *services.CategoryService) {
	handler := NewCategoryHandler(service)

	r.Get("/", handler.List)
	r.Post("/", handler.Create)
	r.Route("/{categoryID}", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Put("/", handler.Update)
		r.Patch("/", handler.PartialUpdate)
		r.Delete("/", handler.Delete)
	})
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	categories, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	category, err := h.service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest, "category already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// Update replaces every field of a category.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CategoryUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	patch := types.CategoryPatch{Name: &req.Name, Description: &req.Description}
	h.applyPatch(w, r, id, patch)
}

// PartialUpdate mutates only the fields present in the request body.
func (h *CategoryHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch types.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.applyPatch(w, r, id, patch)
}

func (h *CategoryHandler) applyPatch(w http.ResponseWriter, r *http.Request, id int, patch types.CategoryPatch) {
	category, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "category not found")
		case errors.Is(err, services.ErrAlreadyExists):
			writeError(w, http.StatusBadRequest, "category already exists")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update category")
		}
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "categoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type CategoryUpsertRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
