package commands

import (
	"context"

	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/ports"
)

type SelectDurationCommandHandler struct {
	sessions ports.SessionRepository
}

func NewSelectDurationCommandHandler(sessions ports.SessionRepository) SelectDurationCommandHandler {
	return SelectDurationCommandHandler{sessions: sessions}
}

func (h SelectDurationCommandHandler) Handle(ctx context.Context, cmd SelectDurationCommand) (order.Record, error) {
	if err := cmd.Validate(); err != nil {
		return order.Record{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return order.Record{}, err
	}

	return session.Store().SetDuration(cmd.Duration()), nil
}
