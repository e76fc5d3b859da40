package commands

import (
	"errors"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrStartOrderCommandIsNotConstructed = errors.New(
		"StartOrderCommand must be created via NewStartOrderCommand constructor",
	)
)

// StartOrderCommand opens a new order session under sessionID.
//
// Example:
//
//	cmd, err := NewStartOrderCommand(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	record, err := handler.Handle(ctx, cmd)
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartOrderCommand(sessionID kernel.UUID) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return StartOrderCommand{}, err
	}

	return cmd, nil
}

func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

func (c StartOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *StartOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
