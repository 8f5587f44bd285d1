package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/liftlog/workout-server-go/internal/audit"
	apperrors "github.com/liftlog/workout-server-go/internal/errors"
	"github.com/liftlog/workout-server-go/internal/model"
	"github.com/liftlog/workout-server-go/internal/service"
)

type ExerciseHandler struct {
	exerciseService *service.ExerciseService
	pagination      Pagination
}

func NewExerciseHandler(exerciseService *service.ExerciseService, pagination Pagination) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		pagination:      pagination,
	}
}

func (h *ExerciseHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)

	return r
}

type createExerciseRequest struct {
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
}

func (req createExerciseRequest) validate() (model.CreateExerciseParams, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"name", req.Name},
		{"url", req.URL},
		{"description", req.Description},
	}
	for _, f := range fields {
		if f.value == nil {
			return model.CreateExerciseParams{}, apperrors.MissingRequired(f.name)
		}
	}

	return model.CreateExerciseParams{
		Name:        *req.Name,
		URL:         *req.URL,
		Description: *req.Description,
	}, nil
}

// GET /exercises/
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.pagination.Parse(r)

	exercises, err := h.exerciseService.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exercises)
}

// POST /exercises/
func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExerciseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	params, err := req.validate()
	if err != nil {
		writeError(w, err)
		return
	}

	exercise, err := h.exerciseService.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exercise)
}

// GET /exercises/{id}
func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	exercise, err := h.exerciseService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, exercise)
}

// DELETE /exercises/{id}
func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	exercise, err := h.exerciseService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	audit.LogFromRequest(r, audit.Event{Type: audit.EventExerciseDelete, ResourceID: id})

	writeJSON(w, http.StatusOK, exercise)
}
