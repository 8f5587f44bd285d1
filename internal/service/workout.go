package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/liftlog/workout-server-go/internal/database"
	apperrors "github.com/liftlog/workout-server-go/internal/errors"
	"github.com/liftlog/workout-server-go/internal/model"
	"github.com/liftlog/workout-server-go/internal/observability"
	"github.com/liftlog/workout-server-go/internal/repository"
)

const workoutResource = "Workout"

type CreateWorkoutInput struct {
	SessionID  int64
	ExerciseID int64
	Reps       *int64
	Time       *int64
}

type WorkoutService struct {
	workoutRepo  repository.WorkoutRepository
	sessionRepo  repository.SessionRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
}

func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	sessionRepo repository.SessionRepository,
	exerciseRepo repository.ExerciseRepository,
) *WorkoutService {
	return &WorkoutService{
		workoutRepo:  workoutRepo,
		sessionRepo:  sessionRepo,
		exerciseRepo: exerciseRepo,
		now:          utcNow,
	}
}

func (s *WorkoutService) List(ctx context.Context, limit, offset int) ([]model.Workout, error) {
	workouts, err := s.workoutRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("list workouts: %w", err))
	}
	return workouts, nil
}

func (s *WorkoutService) GetByID(ctx context.Context, id int64) (*model.Workout, error) {
	workout, err := s.workoutRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("find workout: %w", err))
	}
	if workout == nil {
		return nil, apperrors.NotFound(workoutResource)
	}
	return workout, nil
}

// ListByExercise returns every workout of the exercise, or an empty slice.
func (s *WorkoutService) ListByExercise(ctx context.Context, exerciseID int64) ([]model.Workout, error) {
	workouts, err := s.workoutRepo.FindByExerciseID(ctx, exerciseID)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("list workouts by exercise: %w", err))
	}
	return workouts, nil
}

// Create records a workout against an existing session and exercise.
func (s *WorkoutService) Create(ctx context.Context, params CreateWorkoutInput) (*model.Workout, error) {
	session, err := s.sessionRepo.FindByID(ctx, params.SessionID)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("find session: %w", err))
	}
	if session == nil {
		return nil, apperrors.NotFound(sessionResource)
	}

	exercise, err := s.exerciseRepo.FindByID(ctx, params.ExerciseID)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("find exercise: %w", err))
	}
	if exercise == nil {
		return nil, apperrors.NotFound(exerciseResource)
	}

	workout, err := s.workoutRepo.Create(ctx, model.CreateWorkoutParams{
		SessionID:  params.SessionID,
		ExerciseID: params.ExerciseID,
		Reps:       params.Reps,
		Time:       params.Time,
		CreatedAt:  s.now(),
	})
	if database.IsForeignKeyViolation(err) {
		// session or exercise deleted between the checks and the insert
		return nil, apperrors.NotFound(sessionResource).WithCause(err)
	}
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("create workout: %w", err))
	}

	observability.RecordWorkoutLogged()
	log.Info().
		Int64("workoutId", workout.ID).
		Int64("sessionId", workout.SessionID).
		Int64("exerciseId", workout.ExerciseID).
		Bool("sessionOpen", session.IsOpen()).
		Msg("workout logged")

	return workout, nil
}

func (s *WorkoutService) Delete(ctx context.Context, id int64) (*model.Workout, error) {
	workout, err := s.workoutRepo.Delete(ctx, id)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("delete workout: %w", err))
	}
	if workout == nil {
		return nil, apperrors.NotFound(workoutResource)
	}

	log.Info().Int64("workoutId", id).Msg("workout deleted")
	return workout, nil
}
