package ports

import (
	"context"

	"sauna/internal/core/domain/model/booking"
	"sauna/internal/core/domain/model/kernel"
)

// BookingRepository persists sent bookings.
type BookingRepository interface {
	Add(ctx context.Context, aggregate *booking.Booking) error

	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	GetAllBySession(ctx context.Context, sessionID kernel.UUID) ([]*booking.Booking, error)
}
