package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/liftlog/workout-server-go/internal/database"
	"github.com/liftlog/workout-server-go/internal/model"
)

type ExerciseRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.Exercise, error)
	FindByID(ctx context.Context, id int64) (*model.Exercise, error)
	Create(ctx context.Context, params model.CreateExerciseParams) (*model.Exercise, error)
	// Delete removes the row and returns it, or nil when no row matched.
	Delete(ctx context.Context, id int64) (*model.Exercise, error)
}

type exerciseRepo struct {
	db database.DBTX
}

func NewExerciseRepository(db *sqlx.DB) ExerciseRepository {
	return &exerciseRepo{db: db}
}

func (r *exerciseRepo) List(ctx context.Context, limit, offset int) ([]model.Exercise, error) {
	exercises := []model.Exercise{}
	err := r.db.SelectContext(ctx, &exercises, r.db.Rebind(`
		SELECT * FROM exercises
		ORDER BY id
		LIMIT ? OFFSET ?
	`), limit, offset)
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *exerciseRepo) FindByID(ctx context.Context, id int64) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.db.GetContext(ctx, &exercise, r.db.Rebind(`SELECT * FROM exercises WHERE id = ?`), id)
	return HandleNotFound(&exercise, err)
}

func (r *exerciseRepo) Create(ctx context.Context, params model.CreateExerciseParams) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.db.GetContext(ctx, &exercise, r.db.Rebind(`
		INSERT INTO exercises (name, url, description)
		VALUES (?, ?, ?)
		RETURNING *
	`), params.Name, params.URL, params.Description)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepo) Delete(ctx context.Context, id int64) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.db.GetContext(ctx, &exercise, r.db.Rebind(`DELETE FROM exercises WHERE id = ? RETURNING *`), id)
	return HandleNotFound(&exercise, err)
}
