package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"sauna/internal/core/application/usecases/commands"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	sessionEvictionJob *SessionEvictionJob
}

func NewJobManager(
	evictIdleSessionsHandler commands.EvictIdleSessionsCommandHandler,
	evictionSchedule string,
	sessionIdleTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionEvictionJob: NewSessionEvictionJob(evictIdleSessionsHandler, evictionSchedule, sessionIdleTTL, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.sessionEvictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start session eviction job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.sessionEvictionJob.Stop()
}
