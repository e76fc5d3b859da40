package commands

import (
	"context"
	"fmt"

	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/ports"
	"sauna/internal/pkg/errs"
)

type SelectPickupDateCommandHandler struct {
	sessions ports.SessionRepository
}

func NewSelectPickupDateCommandHandler(sessions ports.SessionRepository) SelectPickupDateCommandHandler {
	return SelectPickupDateCommandHandler{sessions: sessions}
}

// Handle rejects dates that are not in the session's current pickup window.
func (h SelectPickupDateCommandHandler) Handle(ctx context.Context, cmd SelectPickupDateCommand) (order.Record, error) {
	if err := cmd.Validate(); err != nil {
		return order.Record{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return order.Record{}, err
	}

	store := session.Store()
	if window := store.CurrentState().PickupOptions(); !window.Contains(cmd.PickupDate()) {
		return order.Record{}, errs.NewValueIsInvalidErrorWithCause(
			"pickupDate",
			fmt.Errorf("%q is not one of %v", cmd.PickupDate(), window.Dates()),
		)
	}

	return store.SetPickupDate(cmd.PickupDate()), nil
}
