package commands

import (
	"errors"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrSetQuantityCommandIsNotConstructed = errors.New(
		"SetQuantityCommand must be created via NewSetQuantityCommand constructor",
	)
)

// SetQuantityCommand selects the sauna type of a session by its 1-based quantity.
// Quantities outside the catalog are rejected here; the store itself only
// rejects values below 1.
type SetQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewSetQuantityCommand(sessionID kernel.UUID, quantity int) (SetQuantityCommand, error) {
	cmd := SetQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setQuantity(quantity),
	); err != nil {
		return SetQuantityCommand{}, err
	}

	return cmd, nil
}

func (c SetQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetQuantityCommandIsNotConstructed)
}

func (c SetQuantityCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SetQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetQuantityCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SetQuantityCommand) setQuantity(quantity int) error {
	if err := catalog.ValidateQuantity(quantity); err != nil {
		return err
	}

	c.quantity = quantity
	return nil
}
