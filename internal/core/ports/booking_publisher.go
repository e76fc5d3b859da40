package ports

import (
	"context"

	"sauna/internal/core/domain/model/booking"
)

// BookingPublisher announces sent bookings to downstream consumers.
type BookingPublisher interface {
	PublishBookingSent(ctx context.Context, b *booking.Booking) error
}
