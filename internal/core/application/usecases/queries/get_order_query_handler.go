package queries

import (
	"context"

	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/ports"
)

type GetOrderQueryHandler struct {
	sessions ports.SessionRepository
}

func NewGetOrderQueryHandler(sessions ports.SessionRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{sessions: sessions}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Record, error) {
	if err := query.Validate(); err != nil {
		return order.Record{}, err
	}

	session, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return order.Record{}, err
	}

	return session.Store().CurrentState(), nil
}
