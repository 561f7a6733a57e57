package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionExpirer drops assignment sessions idle since before cutoff.
type SessionExpirer interface {
	Expire(ctx context.Context, cutoff time.Time) (int, error)
}

// SessionSweepJob expires idle assignment sessions every minute. Stores with their own
// expiry, such as Redis, do not need it.
type SessionSweepJob struct {
	sessions SessionExpirer
	ttl      time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionSweepJob(sessions SessionExpirer, ttl time.Duration, logger *slog.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sessions: sessions,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweep_job"),
	}
}

func (j *SessionSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started", "ttl", j.ttl)
	return nil
}

// Run expires the sessions idle for longer than the ttl.
func (j *SessionSweepJob) Run(ctx context.Context) {
	n, err := j.sessions.Expire(ctx, j.now().Add(-j.ttl))
	if err != nil {
		j.logger.ErrorContext(ctx, "Session sweep failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "Expired assignment sessions", "count", n)
	}
}

func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
