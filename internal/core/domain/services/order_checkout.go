package services

import (
	"time"

	"sauna/internal/core/domain/model/booking"
	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/core/domain/model/order"
)

// SummarySubjectKey is the opaque subject label used when an order is shared.
const SummarySubjectKey = "new_saunavuoro_order"

// Summary is the review step of the flow. Keys are opaque labels for the presentation layer.
type Summary struct {
	SubjectKey   string
	SaunaTypeKey string
	Duration     catalog.Duration
	PickupDate   string
	Price        string
}

// OrderCheckout turns a complete order Record into a Summary and a Booking.
//
// Business rules:
//   - Only complete records (quantity, duration and pickup date selected) can be checked out
//   - The booking amount is recomputed with the same engine and inputs as the record price
type OrderCheckout struct {
	engine PricingEngine
}

func NewOrderCheckout(engine PricingEngine) OrderCheckout {
	return OrderCheckout{engine: engine}
}

// Summarize returns the review summary of a complete record.
func (c OrderCheckout) Summarize(r order.Record) (Summary, error) {
	if err := r.ValidateComplete(); err != nil {
		return Summary{}, err
	}
	saunaType, err := catalog.SaunaTypeForQuantity(r.Quantity())
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		SubjectKey:   SummarySubjectKey,
		SaunaTypeKey: saunaType.Key(),
		Duration:     r.Duration(),
		PickupDate:   r.PickupDate(),
		Price:        r.Price(),
	}, nil
}

// Book creates the Booking for a complete record sent from sessionID at now.
func (c OrderCheckout) Book(sessionID kernel.UUID, r order.Record, now time.Time) (*booking.Booking, error) {
	if err := r.ValidateComplete(); err != nil {
		return nil, err
	}

	amount := c.engine.Amount(r.Quantity(), r.Duration(), r.PickupDate(), r.PickupOptions().First())
	return booking.NewBooking(
		kernel.NewUUID(),
		sessionID,
		r.Quantity(),
		r.Duration(),
		r.PickupDate(),
		amount,
		r.Price(),
		now,
	)
}
