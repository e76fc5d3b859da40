package commands

import (
	"context"

	"sauna/internal/core/ports"
)

type EndSessionCommandHandler struct {
	sessions ports.SessionRepository
}

func NewEndSessionCommandHandler(sessions ports.SessionRepository) EndSessionCommandHandler {
	return EndSessionCommandHandler{sessions: sessions}
}

func (h EndSessionCommandHandler) Handle(ctx context.Context, cmd EndSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Remove(ctx, cmd.SessionID())
}
