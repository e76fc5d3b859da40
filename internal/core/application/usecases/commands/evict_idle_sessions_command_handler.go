package commands

import (
	"context"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/core/ports"
	"sauna/internal/pkg/clock"
)

type EvictIdleSessionsCommandHandler struct {
	sessions ports.SessionRepository
	clock    clock.Clock
}

func NewEvictIdleSessionsCommandHandler(sessions ports.SessionRepository, clk clock.Clock) EvictIdleSessionsCommandHandler {
	return EvictIdleSessionsCommandHandler{
		sessions: sessions,
		clock:    clk,
	}
}

// Handle returns the IDs of the evicted sessions.
func (h EvictIdleSessionsCommandHandler) Handle(ctx context.Context, cmd EvictIdleSessionsCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cutoff := h.clock.Now().Add(-cmd.IdleTTL())
	return h.sessions.RemoveIdle(ctx, cutoff)
}
