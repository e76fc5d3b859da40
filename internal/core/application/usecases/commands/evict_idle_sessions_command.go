package commands

import (
	"errors"
	"time"

	"sauna/internal/pkg/errs"
	"sauna/internal/pkg/guard"
)

var (
	ErrEvictIdleSessionsCommandIsNotConstructed = errors.New(
		"EvictIdleSessionsCommand must be created via NewEvictIdleSessionsCommand constructor",
	)
)

// EvictIdleSessionsCommand ends every session without activity for longer than idleTTL.
type EvictIdleSessionsCommand struct { //nolint:recvcheck //using for validation
	idleTTL time.Duration

	guard guard.ConstructorGuard
}

func NewEvictIdleSessionsCommand(idleTTL time.Duration) (EvictIdleSessionsCommand, error) {
	if idleTTL <= 0 {
		return EvictIdleSessionsCommand{}, errs.NewValueIsOutOfRangeError("idleTTL", idleTTL, time.Nanosecond, "unbounded")
	}

	return EvictIdleSessionsCommand{
		idleTTL: idleTTL,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c EvictIdleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrEvictIdleSessionsCommandIsNotConstructed)
}

func (c EvictIdleSessionsCommand) IdleTTL() time.Duration {
	return c.idleTTL
}
