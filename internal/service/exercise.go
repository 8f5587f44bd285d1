package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/liftlog/workout-server-go/internal/database"
	apperrors "github.com/liftlog/workout-server-go/internal/errors"
	"github.com/liftlog/workout-server-go/internal/model"
	"github.com/liftlog/workout-server-go/internal/repository"
)

// exerciseResource is the resource name in exercise not-found messages.
const exerciseResource = "Item"

type ExerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

func NewExerciseService(exerciseRepo repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{exerciseRepo: exerciseRepo}
}

func (s *ExerciseService) List(ctx context.Context, limit, offset int) ([]model.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("list exercises: %w", err))
	}
	return exercises, nil
}

func (s *ExerciseService) GetByID(ctx context.Context, id int64) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("find exercise: %w", err))
	}
	if exercise == nil {
		return nil, apperrors.NotFound(exerciseResource)
	}
	return exercise, nil
}

func (s *ExerciseService) Create(ctx context.Context, params model.CreateExerciseParams) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.Create(ctx, params)
	if database.IsUniqueViolation(err) {
		return nil, apperrors.AlreadyExists("Exercise").WithCause(err)
	}
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("create exercise: %w", err))
	}

	log.Info().Int64("exerciseId", exercise.ID).Str("name", exercise.Name).Msg("exercise created")
	return exercise, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id int64) (*model.Exercise, error) {
	exercise, err := s.exerciseRepo.Delete(ctx, id)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("delete exercise: %w", err))
	}
	if exercise == nil {
		return nil, apperrors.NotFound(exerciseResource)
	}

	log.Info().Int64("exerciseId", id).Msg("exercise deleted")
	return exercise, nil
}
