package order

import (
	"errors"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/pkg/errs"
)

// Pricer computes the formatted price of a selection. The pricing engine in the
// domain services package is the production implementation.
type Pricer interface {
	ComputePrice(quantity int, duration catalog.Duration, pickupDate, firstAvailable string) string
}

// Record is one snapshot of an order in progress.
//
// Record follows these invariants:
//   - price is always the Pricer output for (quantity, duration, pickupDate, pickupOptions.First())
//   - quantity 0, duration Unknown and pickupDate "" mean "not selected yet"
//   - a Record is a value; every change produces a new Record
//
// Records are comparable with ==, which is how subscribers detect no-op updates.
type Record struct {
	quantity      int
	duration      catalog.Duration
	pickupDate    string
	price         string
	pickupOptions PickupWindow
}

// NewRecord returns a cleared order offering the given pickup window.
func NewRecord(pricer Pricer, window PickupWindow) Record {
	r := Record{pickupOptions: window}
	return r.reprice(pricer)
}

func (r Record) Quantity() int {
	return r.quantity
}

func (r Record) Duration() catalog.Duration {
	return r.duration
}

func (r Record) PickupDate() string {
	return r.pickupDate
}

// Price is the formatted price for the current selections.
func (r Record) Price() string {
	return r.price
}

func (r Record) PickupOptions() PickupWindow {
	return r.pickupOptions
}

// WithQuantity returns a copy with quantity replaced and the price recomputed.
func (r Record) WithQuantity(pricer Pricer, quantity int) Record {
	r.quantity = quantity
	return r.reprice(pricer)
}

// WithDuration returns a copy with duration replaced and the price recomputed.
func (r Record) WithDuration(pricer Pricer, duration catalog.Duration) Record {
	r.duration = duration
	return r.reprice(pricer)
}

// WithPickupDate returns a copy with pickupDate replaced and the price recomputed.
// Dates outside the pickup window are kept as given.
func (r Record) WithPickupDate(pricer Pricer, pickupDate string) Record {
	r.pickupDate = pickupDate
	return r.reprice(pricer)
}

// ValidateComplete checks that every step of the flow has a selection, which is
// required before the order can be summarized and sent.
func (r Record) ValidateComplete() error {
	var quantityErr, durationErr, dateErr error
	if r.quantity == 0 {
		quantityErr = errs.NewValueIsRequiredError("quantity")
	} else {
		quantityErr = catalog.ValidateQuantity(r.quantity)
	}
	if !r.duration.IsSet() {
		durationErr = errs.NewValueIsRequiredError("duration")
	}
	if r.pickupDate == "" {
		dateErr = errs.NewValueIsRequiredError("pickupDate")
	}
	return errors.Join(quantityErr, durationErr, dateErr)
}

func (r Record) reprice(pricer Pricer) Record {
	r.price = pricer.ComputePrice(r.quantity, r.duration, r.pickupDate, r.pickupOptions.First())
	return r
}
