package services

import (
	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"
)

// SameDaySurcharge is added when the earliest offered pickup date is selected.
var SameDaySurcharge = kernel.MustMoney("10.00")

// PricingEngine prices an order selection. It is a pure function of its inputs
// and never fails: unset or unknown selections contribute nothing.
//
// Business rules:
//   - amount = quantity × duration base price
//   - SameDaySurcharge is added iff pickupDate equals firstAvailable exactly
//
// The surcharge intentionally compares against the first element of the generated
// pickup window and not against the real calendar day.
type PricingEngine struct {
	formatter kernel.MoneyFormatter
}

func NewPricingEngine(formatter kernel.MoneyFormatter) PricingEngine {
	return PricingEngine{formatter: formatter}
}

// Amount returns the unformatted price.
func (e PricingEngine) Amount(
	quantity int,
	duration catalog.Duration,
	pickupDate, firstAvailable string,
) kernel.Money {
	amount := duration.Price().Times(quantity)
	if pickupDate != "" && pickupDate == firstAvailable {
		amount = amount.Add(SameDaySurcharge)
	}
	return amount
}

// ComputePrice returns Amount rendered as localized currency text.
func (e PricingEngine) ComputePrice(
	quantity int,
	duration catalog.Duration,
	pickupDate, firstAvailable string,
) string {
	return e.formatter.Format(e.Amount(quantity, duration, pickupDate, firstAvailable))
}

// Format renders any amount with the engine's formatter, e.g. catalog prices.
func (e PricingEngine) Format(m kernel.Money) string {
	return e.formatter.Format(m)
}
