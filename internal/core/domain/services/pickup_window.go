package services

import (
	"time"

	"sauna/internal/core/domain/model/order"
)

// PickupDateLayout renders a date as weekday, month and day, e.g. "Mon Jul 22".
const PickupDateLayout = "Mon Jan 2"

// GeneratePickupWindow returns tomorrow and the three following calendar days
// relative to now, in now's location. It reads no clock of its own.
func GeneratePickupWindow(now time.Time) order.PickupWindow {
	y, m, d := now.Date()
	// Noon keeps AddDate away from DST transitions around midnight.
	today := time.Date(y, m, d, 12, 0, 0, 0, now.Location())

	var window order.PickupWindow
	for i := range window {
		window[i] = today.AddDate(0, 0, i+1).Format(PickupDateLayout)
	}
	return window
}
