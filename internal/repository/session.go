package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/liftlog/workout-server-go/internal/database"
	"github.com/liftlog/workout-server-go/internal/model"
)

type SessionRepository interface {
	List(ctx context.Context, limit, offset int) ([]model.Session, error)
	FindByID(ctx context.Context, id int64) (*model.Session, error)
	// FindLatestOpen returns the open session with the latest start time
	// (highest id on ties), or nil when every session is closed.
	FindLatestOpen(ctx context.Context) (*model.Session, error)
	Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error)
	// Close stamps endedAt on the session if it is still open and returns the
	// current row. A nil session means the id does not exist.
	Close(ctx context.Context, id int64, endedAt time.Time) (*model.Session, error)
	CloseStartedBefore(ctx context.Context, cutoff, endedAt time.Time) (int64, error)
	Delete(ctx context.Context, id int64) (*model.Session, error)
	// WithTx returns a new repository that uses the given transaction
	WithTx(tx *sqlx.Tx) SessionRepository
}

type sessionRepo struct {
	db database.DBTX
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) WithTx(tx *sqlx.Tx) SessionRepository {
	return &sessionRepo{db: tx}
}

func (r *sessionRepo) List(ctx context.Context, limit, offset int) ([]model.Session, error) {
	sessions := []model.Session{}
	err := r.db.SelectContext(ctx, &sessions, r.db.Rebind(`
		SELECT * FROM sessions
		ORDER BY id
		LIMIT ? OFFSET ?
	`), limit, offset)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) FindByID(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	err := r.db.GetContext(ctx, &session, r.db.Rebind(`SELECT * FROM sessions WHERE id = ?`), id)
	return HandleNotFound(&session, err)
}

func (r *sessionRepo) FindLatestOpen(ctx context.Context) (*model.Session, error) {
	var session model.Session
	err := r.db.GetContext(ctx, &session, `
		SELECT * FROM sessions
		WHERE end_datetime IS NULL
		ORDER BY start_datetime DESC, id DESC
		LIMIT 1
	`)
	return HandleNotFound(&session, err)
}

func (r *sessionRepo) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	var session model.Session
	err := r.db.GetContext(ctx, &session, r.db.Rebind(`
		INSERT INTO sessions (start_datetime, end_datetime)
		VALUES (?, NULL)
		RETURNING *
	`), params.StartDatetime)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) Close(ctx context.Context, id int64, endedAt time.Time) (*model.Session, error) {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE sessions SET end_datetime = ?
		WHERE id = ? AND end_datetime IS NULL
	`), endedAt, id)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *sessionRepo) CloseStartedBefore(ctx context.Context, cutoff, endedAt time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`
		UPDATE sessions SET end_datetime = ?
		WHERE end_datetime IS NULL AND start_datetime < ?
	`), endedAt, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *sessionRepo) Delete(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	err := r.db.GetContext(ctx, &session, r.db.Rebind(`DELETE FROM sessions WHERE id = ? RETURNING *`), id)
	return HandleNotFound(&session, err)
}
