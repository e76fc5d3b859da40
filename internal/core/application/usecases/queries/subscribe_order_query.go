package queries

import (
	"errors"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/core/domain/model/order"
	"sauna/internal/pkg/guard"
)

var (
	ErrSubscribeOrderQueryIsNotConstructed = errors.New(
		"SubscribeOrderQuery must be created via NewSubscribeOrderQuery constructor",
	)
)

// SubscribeOrderQuery opens a live feed of the records published by a session.
type SubscribeOrderQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubscribeOrderQuery(sessionID kernel.UUID) (SubscribeOrderQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return SubscribeOrderQuery{}, err
	}

	return SubscribeOrderQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q SubscribeOrderQuery) Validate() error {
	return q.guard.Validate(ErrSubscribeOrderQueryIsNotConstructed)
}

func (q SubscribeOrderQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// SubscribeOrderQueryResponse carries the record at subscription time and the feed
// of later ones. Updates is closed by Unsubscribe or when the session ends.
type SubscribeOrderQueryResponse struct {
	Current     order.Record
	Updates     <-chan order.Record
	Unsubscribe func()
}
