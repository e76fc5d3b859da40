package booking

import (
	"errors"
	"fmt"
	"time"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/errs"
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking skipped NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
)

// Booking is the aggregate root for a sent order.
type Booking struct {
	id             kernel.UUID
	sessionID      kernel.UUID
	quantity       int
	duration       catalog.Duration
	pickupDate     string
	price          kernel.Money
	formattedPrice string
	createdAt      time.Time

	isConstructed bool
}

// NewBooking validates every field and returns the booking, or all validation errors joined.
//
// Example:
//
//	b, err := booking.NewBooking(kernel.NewUUID(), sessionID, 2, catalog.OneHour,
//	    "Tue Jul 23", kernel.MustMoney("34.00"), "$34.00", time.Now())
func NewBooking(
	id, sessionID kernel.UUID,
	quantity int,
	duration catalog.Duration,
	pickupDate string,
	price kernel.Money,
	formattedPrice string,
	createdAt time.Time,
) (*Booking, error) {
	b := &Booking{
		price:          price,
		formattedPrice: formattedPrice,
		isConstructed:  true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setSessionID(sessionID),
		b.setQuantity(quantity),
		b.setDuration(duration),
		b.setPickupDate(pickupDate),
		b.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking rebuilds a booking read back from storage, applying the same validation.
func RestoreBooking(
	id, sessionID kernel.UUID,
	quantity int,
	duration catalog.Duration,
	pickupDate string,
	price kernel.Money,
	formattedPrice string,
	createdAt time.Time,
) (*Booking, error) {
	return NewBooking(id, sessionID, quantity, duration, pickupDate, price, formattedPrice, createdAt)
}

func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

func (b *Booking) ID() kernel.UUID {
	return b.id
}

// SessionID is the order session the booking was sent from.
func (b *Booking) SessionID() kernel.UUID {
	return b.sessionID
}

func (b *Booking) Quantity() int {
	return b.quantity
}

// SaunaType resolves the booked variant; quantity was validated on construction.
func (b *Booking) SaunaType() catalog.SaunaType {
	st, _ := catalog.SaunaTypeForQuantity(b.quantity)
	return st
}

func (b *Booking) Duration() catalog.Duration {
	return b.duration
}

func (b *Booking) PickupDate() string {
	return b.pickupDate
}

func (b *Booking) Price() kernel.Money {
	return b.price
}

func (b *Booking) FormattedPrice() string {
	return b.formattedPrice
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.sessionID = id
	return nil
}

func (b *Booking) setQuantity(quantity int) error {
	if err := catalog.ValidateQuantity(quantity); err != nil {
		return err
	}
	b.quantity = quantity
	return nil
}

func (b *Booking) setDuration(duration catalog.Duration) error {
	if err := duration.Validate(); err != nil {
		return err
	}
	b.duration = duration
	return nil
}

func (b *Booking) setPickupDate(pickupDate string) error {
	if pickupDate == "" {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	b.pickupDate = pickupDate
	return nil
}

func (b *Booking) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredErrorWithCause("createdAt", fmt.Errorf("zero time"))
	}
	b.createdAt = createdAt
	return nil
}
