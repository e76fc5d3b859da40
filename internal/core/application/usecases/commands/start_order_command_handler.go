package commands

import (
	"context"
	"log/slog"

	"sauna/internal/core/application/orderstore"
	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/ports"
	"sauna/internal/pkg/clock"
)

// StartOrderCommandHandler creates a fresh store for a new session and registers it.
// The returned record is the store's initial state: nothing selected, window
// generated from the clock.
type StartOrderCommandHandler struct {
	sessions ports.SessionRepository
	clock    clock.Clock
	pricer   order.Pricer
	logger   *slog.Logger
	opts     []orderstore.Option
}

func NewStartOrderCommandHandler(
	sessions ports.SessionRepository,
	clk clock.Clock,
	pricer order.Pricer,
	logger *slog.Logger,
	opts ...orderstore.Option,
) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		sessions: sessions,
		clock:    clk,
		pricer:   pricer,
		logger:   logger,
		opts:     opts,
	}
}

func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (order.Record, error) {
	if err := cmd.Validate(); err != nil {
		return order.Record{}, err
	}

	store := orderstore.NewStore(h.clock, h.pricer, h.logger.With("session_id", cmd.SessionID().String()), h.opts...)
	session, err := orderstore.NewSession(cmd.SessionID(), store, h.clock.Now())
	if err != nil {
		store.Close()
		return order.Record{}, err
	}

	if err = h.sessions.Add(ctx, session); err != nil {
		store.Close()
		return order.Record{}, err
	}

	return store.CurrentState(), nil
}
