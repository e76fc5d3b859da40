package commands

import (
	"context"

	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/ports"
)

type SetQuantityCommandHandler struct {
	sessions ports.SessionRepository
}

func NewSetQuantityCommandHandler(sessions ports.SessionRepository) SetQuantityCommandHandler {
	return SetQuantityCommandHandler{sessions: sessions}
}

func (h SetQuantityCommandHandler) Handle(ctx context.Context, cmd SetQuantityCommand) (order.Record, error) {
	if err := cmd.Validate(); err != nil {
		return order.Record{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return order.Record{}, err
	}

	return session.Store().SetQuantity(cmd.Quantity())
}
