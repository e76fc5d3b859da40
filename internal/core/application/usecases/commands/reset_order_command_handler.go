package commands

import (
	"context"

	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/ports"
)

type ResetOrderCommandHandler struct {
	sessions ports.SessionRepository
}

func NewResetOrderCommandHandler(sessions ports.SessionRepository) ResetOrderCommandHandler {
	return ResetOrderCommandHandler{sessions: sessions}
}

func (h ResetOrderCommandHandler) Handle(ctx context.Context, cmd ResetOrderCommand) (order.Record, error) {
	if err := cmd.Validate(); err != nil {
		return order.Record{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return order.Record{}, err
	}

	return session.Store().Reset(), nil
}
