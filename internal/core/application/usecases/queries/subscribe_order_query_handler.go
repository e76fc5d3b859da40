package queries

import (
	"context"

	"sauna/internal/core/ports"
)

type SubscribeOrderQueryHandler struct {
	sessions ports.SessionRepository
}

func NewSubscribeOrderQueryHandler(sessions ports.SessionRepository) SubscribeOrderQueryHandler {
	return SubscribeOrderQueryHandler{sessions: sessions}
}

// Handle subscribes before reading the current record, so an update racing with
// the call is seen at least once.
func (h SubscribeOrderQueryHandler) Handle(ctx context.Context, query SubscribeOrderQuery) (SubscribeOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SubscribeOrderQueryResponse{}, err
	}

	session, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return SubscribeOrderQueryResponse{}, err
	}

	store := session.Store()
	updates, unsubscribe := store.Subscribe()
	return SubscribeOrderQueryResponse{
		Current:     store.CurrentState(),
		Updates:     updates,
		Unsubscribe: unsubscribe,
	}, nil
}
