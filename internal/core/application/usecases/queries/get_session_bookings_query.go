package queries

import (
	"errors"
	"time"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrGetSessionBookingsQueryIsNotConstructed = errors.New(
		"GetSessionBookingsQuery must be created via NewGetSessionBookingsQuery constructor",
	)
)

// GetSessionBookingsQuery lists the bookings sent from one session, oldest first.
type GetSessionBookingsQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionBookingsQuery(sessionID kernel.UUID) (GetSessionBookingsQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionBookingsQuery{}, err
	}

	return GetSessionBookingsQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetSessionBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionBookingsQueryIsNotConstructed)
}

func (q GetSessionBookingsQuery) SessionID() kernel.UUID {
	return q.sessionID
}

type GetSessionBookingsQueryResponse struct {
	ID         kernel.UUID
	SaunaType  string
	Duration   string
	PickupDate string
	Price      string
	CreatedAt  time.Time
}
