package jobs

import (
	"context"
	"log/slog"
	"time"

	"sauna/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultEvictionSchedule runs the eviction at second 0 of every minute.
const DefaultEvictionSchedule = "0 * * * * *"

// SessionEvictionJob ends order sessions that have been idle longer than idleTTL.
type SessionEvictionJob struct {
	handler  commands.EvictIdleSessionsCommandHandler
	schedule string
	idleTTL  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionEvictionJob uses a six-field cron schedule (with seconds). An empty
// schedule means DefaultEvictionSchedule.
func NewSessionEvictionJob(
	handler commands.EvictIdleSessionsCommandHandler,
	schedule string,
	idleTTL time.Duration,
	logger *slog.Logger,
) *SessionEvictionJob {
	if schedule == "" {
		schedule = DefaultEvictionSchedule
	}

	return &SessionEvictionJob{
		handler:  handler,
		schedule: schedule,
		idleTTL:  idleTTL,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_eviction_job"),
	}
}

func (j *SessionEvictionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session eviction job started",
		"schedule", j.schedule,
		"idle_ttl", j.idleTTL.String())
	return nil
}

// RunOnce evicts idle sessions now and returns how many were removed.
func (j *SessionEvictionJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewEvictIdleSessionsCommand(j.idleTTL)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session eviction job misconfigured", "error", err)
		return 0, err
	}

	evicted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session eviction job failed", "error", err)
		return 0, err
	}

	if len(evicted) > 0 {
		j.logger.InfoContext(ctx, "Idle sessions evicted", "count", len(evicted))
	}
	return len(evicted), nil
}

// Stop waits for a running eviction to finish.
func (j *SessionEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session eviction job stopped")
}
