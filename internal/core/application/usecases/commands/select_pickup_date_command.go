package commands

import (
	"errors"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/errs"
	"sauna/internal/pkg/guard"
)

var (
	ErrSelectPickupDateCommandIsNotConstructed = errors.New(
		"SelectPickupDateCommand must be created via NewSelectPickupDateCommand constructor",
	)
)

// SelectPickupDateCommand picks one of the displayed pickup dates, e.g. "Tue Jul 23".
// Membership in the session's current window is checked by the handler.
type SelectPickupDateCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	pickupDate string

	guard guard.ConstructorGuard
}

func NewSelectPickupDateCommand(sessionID kernel.UUID, pickupDate string) (SelectPickupDateCommand, error) {
	cmd := SelectPickupDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setPickupDate(pickupDate),
	); err != nil {
		return SelectPickupDateCommand{}, err
	}

	return cmd, nil
}

func (c SelectPickupDateCommand) Validate() error {
	return c.guard.Validate(ErrSelectPickupDateCommandIsNotConstructed)
}

func (c SelectPickupDateCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SelectPickupDateCommand) PickupDate() string {
	return c.pickupDate
}

func (c *SelectPickupDateCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SelectPickupDateCommand) setPickupDate(pickupDate string) error {
	if pickupDate == "" {
		return errs.NewValueIsRequiredError("pickupDate")
	}

	c.pickupDate = pickupDate
	return nil
}
