package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/liftlog/workout-server-go/internal/database"
	"github.com/liftlog/workout-server-go/internal/model"
)

type WorkoutRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.Workout, error)
	FindByID(ctx context.Context, id int64) (*model.Workout, error)
	FindByExerciseID(ctx context.Context, exerciseID int64) ([]model.Workout, error)
	Create(ctx context.Context, params model.CreateWorkoutParams) (*model.Workout, error)
	Delete(ctx context.Context, id int64) (*model.Workout, error)
}

type workoutRepo struct {
	db database.DBTX
}

func NewWorkoutRepository(db *sqlx.DB) WorkoutRepository {
	return &workoutRepo{db: db}
}

func (r *workoutRepo) List(ctx context.Context, limit, offset int) ([]model.Workout, error) {
	workouts := []model.Workout{}
	err := r.db.SelectContext(ctx, &workouts, r.db.Rebind(`
		SELECT * FROM workouts
		ORDER BY id
		LIMIT ? OFFSET ?
	`), limit, offset)
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepo) FindByID(ctx context.Context, id int64) (*model.Workout, error) {
	var workout model.Workout
	err := r.db.GetContext(ctx, &workout, r.db.Rebind(`SELECT * FROM workouts WHERE id = ?`), id)
	return HandleNotFound(&workout, err)
}

func (r *workoutRepo) FindByExerciseID(ctx context.Context, exerciseID int64) ([]model.Workout, error) {
	workouts := []model.Workout{}
	err := r.db.SelectContext(ctx, &workouts, r.db.Rebind(`
		SELECT * FROM workouts
		WHERE exercise_id = ?
		ORDER BY id
	`), exerciseID)
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepo) Create(ctx context.Context, params model.CreateWorkoutParams) (*model.Workout, error) {
	var workout model.Workout
	err := r.db.GetContext(ctx, &workout, r.db.Rebind(`
		INSERT INTO workouts (session_id, exercise_id, reps, "time", created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING *
	`), params.SessionID, params.ExerciseID, params.Reps, params.Time, params.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepo) Delete(ctx context.Context, id int64) (*model.Workout, error) {
	var workout model.Workout
	err := r.db.GetContext(ctx, &workout, r.db.Rebind(`DELETE FROM workouts WHERE id = ? RETURNING *`), id)
	return HandleNotFound(&workout, err)
}
