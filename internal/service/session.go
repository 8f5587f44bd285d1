package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/liftlog/workout-server-go/internal/database"
	apperrors "github.com/liftlog/workout-server-go/internal/errors"
	"github.com/liftlog/workout-server-go/internal/model"
	"github.com/liftlog/workout-server-go/internal/observability"
	"github.com/liftlog/workout-server-go/internal/repository"
)

const sessionResource = "Session"

// SessionService owns the session lifecycle: Open (end_datetime unset) to
// Closed (end_datetime set). There is no transition back to Open.
type SessionService struct {
	txer        Transactor
	sessionRepo repository.SessionRepository
	now         func() time.Time
}

func NewSessionService(txer Transactor, sessionRepo repository.SessionRepository) *SessionService {
	return &SessionService{
		txer:        txer,
		sessionRepo: sessionRepo,
		now:         utcNow,
	}
}

func (s *SessionService) List(ctx context.Context, limit, offset int) ([]model.Session, error) {
	sessions, err := s.sessionRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("list sessions: %w", err))
	}
	return sessions, nil
}

func (s *SessionService) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("find session: %w", err))
	}
	if session == nil {
		return nil, apperrors.NotFound(sessionResource)
	}
	return session, nil
}

// ResolveOpen returns the id of the current open session, creating one
// started now if every session is closed. Lookup and insert share one
// transaction; a concurrent creator that wins the single-open index makes our
// insert fail, in which case the winner's session is returned.
func (s *SessionService) ResolveOpen(ctx context.Context) (int64, error) {
	var (
		session *model.Session
		created bool
	)

	err := s.txer.WithTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.sessionRepo.WithTx(tx)

		open, err := repo.FindLatestOpen(ctx)
		if err != nil {
			return fmt.Errorf("find open session: %w", err)
		}
		if open != nil {
			session = open
			return nil
		}

		session, err = repo.Create(ctx, model.CreateSessionParams{StartDatetime: s.now()})
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		if !database.IsUniqueViolation(err) {
			return 0, apperrors.Database(err)
		}
		return s.resolveAfterConflict(ctx, err)
	}

	if created {
		observability.RecordSessionOpened()
		log.Info().
			Int64("sessionId", session.ID).
			Time("startDatetime", session.StartDatetime).
			Msg("session opened")
	}

	return session.ID, nil
}

func (s *SessionService) resolveAfterConflict(ctx context.Context, cause error) (int64, error) {
	observability.RecordOpenSessionConflict()

	open, err := s.sessionRepo.FindLatestOpen(ctx)
	if err != nil {
		return 0, apperrors.Database(fmt.Errorf("find open session after conflict: %w", err))
	}
	if open == nil {
		// The winning session was closed before we could read it.
		return 0, apperrors.Database(fmt.Errorf("open session vanished after conflict: %w", cause))
	}

	log.Debug().Int64("sessionId", open.ID).Msg("joined concurrently opened session")
	return open.ID, nil
}

// Close stamps the session's end time with the current time. Closing an
// already closed session leaves its end time untouched. Callers are expected
// to have checked existence with GetByID.
func (s *SessionService) Close(ctx context.Context, id int64) (*model.Session, error) {
	session, err := s.sessionRepo.Close(ctx, id, s.now())
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("close session: %w", err))
	}
	if session == nil {
		return nil, apperrors.NotFound(sessionResource)
	}

	observability.RecordSessionsClosed(observability.CloseReasonManual, 1)
	log.Info().Int64("sessionId", id).Msg("session closed")
	return session, nil
}

// AutoCloseStale closes every session that has been open longer than maxOpen.
func (s *SessionService) AutoCloseStale(ctx context.Context, maxOpen time.Duration) (int64, error) {
	now := s.now()
	count, err := s.sessionRepo.CloseStartedBefore(ctx, now.Add(-maxOpen), now)
	if err != nil {
		return 0, fmt.Errorf("close stale sessions: %w", err)
	}

	observability.RecordSessionsClosed(observability.CloseReasonStale, count)
	return count, nil
}

func (s *SessionService) Delete(ctx context.Context, id int64) (*model.Session, error) {
	session, err := s.sessionRepo.Delete(ctx, id)
	if err != nil {
		return nil, apperrors.Database(fmt.Errorf("delete session: %w", err))
	}
	if session == nil {
		return nil, apperrors.NotFound(sessionResource)
	}

	log.Info().Int64("sessionId", id).Msg("session deleted")
	return session, nil
}
