package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/liftlog/workout-server-go/internal/audit"
	"github.com/liftlog/workout-server-go/internal/service"
)

type WorkoutHandler struct {
	workoutService *service.WorkoutService
	pagination     Pagination
}

func NewWorkoutHandler(workoutService *service.WorkoutService, pagination Pagination) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		pagination:     pagination,
	}
}

func (h *WorkoutHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/exercise/{exercise_id}", h.ListByExercise)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)

	return r
}

// GET /workouts/
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.pagination.Parse(r)

	workouts, err := h.workoutService.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

// GET /workouts/exercise/{exercise_id}
func (h *WorkoutHandler) ListByExercise(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := pathID(r, "exercise_id")
	if err != nil {
		writeError(w, err)
		return
	}

	workouts, err := h.workoutService.ListByExercise(r.Context(), exerciseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

// GET /workouts/{id}
func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	workout, err := h.workoutService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workout)
}

// DELETE /workouts/{id}
func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	workout, err := h.workoutService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	audit.LogFromRequest(r, audit.Event{Type: audit.EventWorkoutDelete, ResourceID: id})

	writeJSON(w, http.StatusOK, workout)
}
