package commands

import (
	"errors"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/guard"
)

var (
	ErrSendOrderCommandIsNotConstructed = errors.New(
		"SendOrderCommand must be created via NewSendOrderCommand constructor",
	)
)

// SendOrderCommand confirms the reviewed order of a session.
//
// Example:
//
//	cmd, _ := NewSendOrderCommand(sessionID)
//	bookingID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectIsDuplicate) {
//	    // the same order is already being sent
//	}
type SendOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSendOrderCommand(sessionID kernel.UUID) (SendOrderCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return SendOrderCommand{}, err
	}

	return SendOrderCommand{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderCommandIsNotConstructed)
}

func (c SendOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}
