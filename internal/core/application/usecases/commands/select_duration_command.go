package commands

import (
	"errors"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrSelectDurationCommandIsNotConstructed = errors.New(
		"SelectDurationCommand must be created via NewSelectDurationCommand constructor",
	)
)

// SelectDurationCommand picks a duration by its catalog label, e.g. "30 min".
type SelectDurationCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	duration  catalog.Duration

	guard guard.ConstructorGuard
}

func NewSelectDurationCommand(sessionID kernel.UUID, label string) (SelectDurationCommand, error) {
	cmd := SelectDurationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setDuration(label),
	); err != nil {
		return SelectDurationCommand{}, err
	}

	return cmd, nil
}

func (c SelectDurationCommand) Validate() error {
	return c.guard.Validate(ErrSelectDurationCommandIsNotConstructed)
}

func (c SelectDurationCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SelectDurationCommand) Duration() catalog.Duration {
	return c.duration
}

func (c *SelectDurationCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SelectDurationCommand) setDuration(label string) error {
	duration, err := catalog.ParseDuration(label)
	if err != nil {
		return err
	}

	c.duration = duration
	return nil
}
