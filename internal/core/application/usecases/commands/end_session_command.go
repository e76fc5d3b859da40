package commands

import (
	"errors"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrEndSessionCommandIsNotConstructed = errors.New(
		"EndSessionCommand must be created via NewEndSessionCommand constructor",
	)
)

// EndSessionCommand closes a session and its subscriptions.
type EndSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewEndSessionCommand(sessionID kernel.UUID) (EndSessionCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return EndSessionCommand{}, err
	}

	return EndSessionCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EndSessionCommand) Validate() error {
	return c.guard.Validate(ErrEndSessionCommandIsNotConstructed)
}

func (c EndSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}
