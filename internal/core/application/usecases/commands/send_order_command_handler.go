package commands

import (
	"context"
	"fmt"
	"log/slog"

	"sauna/internal/core/domain/model/booking"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/domain/services"
	"sauna/internal/core/ports"
	"sauna/internal/pkg/clock"
	"sauna/internal/pkg/errs"
)

// SendOrderCommandHandler turns the complete order of a session into a booking.
//
// Steps:
//  1. Build the booking from the current record (fails while selections are missing)
//  2. Claim the send guard for this exact order; a second claim is a duplicate
//  3. Persist the booking in one transaction, releasing the guard if that fails
//  4. Publish BookingSent; a publish failure is logged, the booking stays persisted
//  5. Reset the session so the flow starts over
type SendOrderCommandHandler struct {
	sessions   ports.SessionRepository
	checkout   services.OrderCheckout
	uowFactory BookingUoWFactory
	publisher  ports.BookingPublisher
	sendGuard  ports.SendGuard
	clock      clock.Clock
	logger     *slog.Logger
}

func NewSendOrderCommandHandler(
	sessions ports.SessionRepository,
	checkout services.OrderCheckout,
	uowFactory BookingUoWFactory,
	publisher ports.BookingPublisher,
	sendGuard ports.SendGuard,
	clk clock.Clock,
	logger *slog.Logger,
) SendOrderCommandHandler {
	return SendOrderCommandHandler{
		sessions:   sessions,
		checkout:   checkout,
		uowFactory: uowFactory,
		publisher:  publisher,
		sendGuard:  sendGuard,
		clock:      clk,
		logger:     logger.With("component", "send_order"),
	}
}

// Handle returns the ID of the created booking.
func (h SendOrderCommandHandler) Handle(ctx context.Context, cmd SendOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return kernel.UUID{}, err
	}

	store := session.Store()
	record := store.CurrentState()
	b, err := h.checkout.Book(cmd.SessionID(), record, h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	key := sendKey(cmd.SessionID(), record)
	acquired, err := h.sendGuard.Acquire(ctx, key)
	if err != nil {
		return kernel.UUID{}, err
	}
	if !acquired {
		return kernel.UUID{}, errs.NewObjectIsDuplicateError("order", key)
	}

	if err = h.persist(ctx, b); err != nil {
		if releaseErr := h.sendGuard.Release(ctx, key); releaseErr != nil {
			h.logger.WarnContext(ctx, "send guard not released", "key", key, "error", releaseErr)
		}
		return kernel.UUID{}, err
	}

	if err = h.publisher.PublishBookingSent(ctx, b); err != nil {
		h.logger.ErrorContext(ctx, "booking persisted but event not published",
			"booking_id", b.ID().String(),
			"error", err)
	}

	store.Reset()
	h.logger.InfoContext(ctx, "order sent",
		"session_id", cmd.SessionID().String(),
		"booking_id", b.ID().String(),
		"price", b.FormattedPrice())

	return b.ID(), nil
}

func (h SendOrderCommandHandler) persist(ctx context.Context, b *booking.Booking) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.BookingRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// sendKey identifies one order of one session: the same selections sent twice share a key.
func sendKey(sessionID kernel.UUID, r order.Record) string {
	return fmt.Sprintf("%s:%d:%d:%s", sessionID, r.Quantity(), int(r.Duration()), r.PickupDate())
}
