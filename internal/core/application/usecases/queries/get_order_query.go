// Package queries contains read-only operations over order sessions, the catalog
// and sent bookings.
package queries

import (
	"errors"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads the current record of a session.
type GetOrderQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(sessionID kernel.UUID) (GetOrderQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) SessionID() kernel.UUID {
	return q.sessionID
}
