package queries

import (
	"context"

	"sauna/internal/core/domain/services"
	"sauna/internal/core/ports"
)

type GetOrderSummaryQueryHandler struct {
	sessions ports.SessionRepository
	checkout services.OrderCheckout
}

func NewGetOrderSummaryQueryHandler(sessions ports.SessionRepository, checkout services.OrderCheckout) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{
		sessions: sessions,
		checkout: checkout,
	}
}

// Handle fails with the joined Required errors of every missing selection.
func (h GetOrderSummaryQueryHandler) Handle(ctx context.Context, query GetOrderSummaryQuery) (services.Summary, error) {
	if err := query.Validate(); err != nil {
		return services.Summary{}, err
	}

	session, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return services.Summary{}, err
	}

	return h.checkout.Summarize(session.Store().CurrentState())
}
