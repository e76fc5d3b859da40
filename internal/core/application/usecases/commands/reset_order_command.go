package commands

import (
	"errors"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrResetOrderCommandIsNotConstructed = errors.New(
		"ResetOrderCommand must be created via NewResetOrderCommand constructor",
	)
)

// ResetOrderCommand cancels the selections of a session and regenerates its pickup window.
type ResetOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResetOrderCommand(sessionID kernel.UUID) (ResetOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return ResetOrderCommand{}, err
	}

	return ResetOrderCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ResetOrderCommand) Validate() error {
	return c.guard.Validate(ErrResetOrderCommandIsNotConstructed)
}

func (c ResetOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}
