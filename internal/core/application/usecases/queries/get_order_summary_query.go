package queries

import (
	"errors"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery builds the review step of a session whose selections are complete.
type GetOrderSummaryQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderSummaryQuery(sessionID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

func (q GetOrderSummaryQuery) SessionID() kernel.UUID {
	return q.sessionID
}
