package service

import (
	"context"
	"time"

	"github.com/liftlog/workout-server-go/internal/database"
)

// Transactor runs fn inside a storage transaction. *database.DB satisfies it.
type Transactor interface {
	WithTx(ctx context.Context, fn database.TxFunc) error
}

var _ Transactor = (*database.DB)(nil)

func utcNow() time.Time {
	return time.Now().UTC()
}
