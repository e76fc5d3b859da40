package catalog

import (
	"fmt"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/errs"
)

// Duration is the bookable session length. Each known value carries its own
// base price, so pricing never goes through a label lookup.
type Duration int

const (
	// Unknown is the unset duration. It prices at zero.
	Unknown Duration = iota
	FifteenMinutes
	ThirtyMinutes
	OneHour
	TwoHours
	ThreeHours
)

func getDurationLabels() map[Duration]string {
	//nolint:exhaustive // Unknown has no label
	return map[Duration]string{
		FifteenMinutes: "15 min",
		ThirtyMinutes:  "30 min",
		OneHour:        "1h",
		TwoHours:       "2h",
		ThreeHours:     "3h",
	}
}

func getDurationPrices() map[Duration]kernel.Money {
	//nolint:exhaustive // Unknown prices at zero
	return map[Duration]kernel.Money{
		FifteenMinutes: kernel.MustMoney("5.00"),
		ThirtyMinutes:  kernel.MustMoney("9.00"),
		OneHour:        kernel.MustMoney("17.00"),
		TwoHours:       kernel.MustMoney("30.00"),
		ThreeHours:     kernel.MustMoney("40.00"),
	}
}

// Durations lists the known durations, shortest first.
func Durations() []Duration {
	return []Duration{FifteenMinutes, ThirtyMinutes, OneHour, TwoHours, ThreeHours}
}

// ParseDuration maps a label such as "30 min" back to its Duration.
// Unrecognized labels return Unknown together with an error.
func ParseDuration(label string) (Duration, error) {
	for d, l := range getDurationLabels() {
		if l == label {
			return d, nil
		}
	}
	if label == "" {
		return Unknown, errs.NewValueIsRequiredError("duration")
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"duration",
		fmt.Errorf("%q is not a known duration", label),
	)
}

// Validate rejects Unknown and out of range values.
func (d Duration) Validate() error {
	if _, ok := getDurationLabels()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("duration", fmt.Errorf("%d is not a valid duration", d))
	}
	return nil
}

// IsSet reports whether d is a known duration.
func (d Duration) IsSet() bool {
	return d.Validate() == nil
}

// Label returns the opaque label, or "" for Unknown.
func (d Duration) Label() string {
	return getDurationLabels()[d]
}

func (d Duration) String() string {
	if l := d.Label(); l != "" {
		return l
	}
	return "Unknown"
}

// Price returns the base price; Unknown and invalid values price at zero.
func (d Duration) Price() kernel.Money {
	if p, ok := getDurationPrices()[d]; ok {
		return p
	}
	return kernel.ZeroMoney()
}
