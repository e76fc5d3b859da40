// Package commands contains the operations that change an order session or
// record a sent booking. Every command is built through its constructor, which
// validates the input at the boundary, and is executed by a matching handler.
package commands

import (
	"context"

	"sauna/internal/core/ports"
)

type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides the booking repository bound to the transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// BookingUoW manages transactions for booking writes.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
	}

	// BookingUoWFactory creates a new booking unit of work per send.
	BookingUoWFactory interface {
		Create() BookingUoW
	}
)

