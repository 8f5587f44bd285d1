package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const runTimeout = 30 * time.Second

// SessionCloser closes sessions open longer than maxOpen and reports how many.
type SessionCloser interface {
	AutoCloseStale(ctx context.Context, maxOpen time.Duration) (int64, error)
}

// StaleSessionJob periodically closes sessions that were left open.
type StaleSessionJob struct {
	closer   SessionCloser
	maxOpen  time.Duration
	interval time.Duration
	done     chan struct{}
	stopped  chan struct{}
}

func NewStaleSessionJob(closer SessionCloser, maxOpen, interval time.Duration) *StaleSessionJob {
	return &StaleSessionJob{
		closer:   closer,
		maxOpen:  maxOpen,
		interval: interval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (j *StaleSessionJob) Start() {
	go j.run()
	log.Info().
		Dur("interval", j.interval).
		Dur("maxOpen", j.maxOpen).
		Msg("stale session job started")
}

// Stop signals the job and waits for an in-flight run to finish.
func (j *StaleSessionJob) Stop() {
	close(j.done)
	<-j.stopped
	log.Info().Msg("stale session job stopped")
}

func (j *StaleSessionJob) run() {
	defer close(j.stopped)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.closeStale()

	for {
		select {
		case <-j.done:
			return
		case <-ticker.C:
			j.closeStale()
		}
	}
}

func (j *StaleSessionJob) closeStale() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	count, err := j.closer.AutoCloseStale(ctx, j.maxOpen)
	if err != nil {
		log.Error().Err(err).Msg("failed to close stale sessions")
	} else if count > 0 {
		log.Info().Int64("count", count).Msg("closed stale sessions")
	}
}
