package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/liftlog/workout-server-go/internal/audit"
	"github.com/liftlog/workout-server-go/internal/service"
)

type SessionHandler struct {
	sessionService *service.SessionService
	workoutService *service.WorkoutService
	pagination     Pagination
}

func NewSessionHandler(
	sessionService *service.SessionService,
	workoutService *service.WorkoutService,
	pagination Pagination,
) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		workoutService: workoutService,
		pagination:     pagination,
	}
}

func (h *SessionHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/current", h.Current)
	r.Get("/{id}", h.Get)
	r.Get("/{id}/close", h.Close)
	r.Delete("/{id}", h.Delete)
	r.Post("/{session_id}/exercise/{exercise_id}", h.LogWorkout)

	return r
}

type currentSessionResponse struct {
	ID int64 `json:"id"`
}

type logWorkoutRequest struct {
	Reps *int64 `json:"reps"`
	Time *int64 `json:"time"`
}

// GET /sessions/
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	page := h.pagination.Parse(r)

	sessions, err := h.sessionService.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

// GET /sessions/current
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	id, err := h.sessionService.ResolveOpen(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, currentSessionResponse{ID: id})
}

// GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	session, err := h.sessionService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// GET /sessions/{id}/close
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	if _, err := h.sessionService.GetByID(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	session, err := h.sessionService.Close(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	audit.LogFromRequest(r, audit.Event{Type: audit.EventSessionClose, ResourceID: id})

	writeJSON(w, http.StatusOK, session)
}

// DELETE /sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	session, err := h.sessionService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	audit.LogFromRequest(r, audit.Event{
		Type:       audit.EventSessionDelete,
		ResourceID: id,
		Details:    map[string]interface{}{"open": session.IsOpen()},
	})

	writeJSON(w, http.StatusOK, session)
}

// POST /sessions/{session_id}/exercise/{exercise_id}
func (h *SessionHandler) LogWorkout(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "session_id")
	if err != nil {
		writeError(w, err)
		return
	}
	exerciseID, err := pathID(r, "exercise_id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req logWorkoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	workout, err := h.workoutService.Create(r.Context(), service.CreateWorkoutInput{
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		Reps:       req.Reps,
		Time:       req.Time,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workout)
}
