package order

// WindowSize is the number of pickup dates offered.
const WindowSize = 4

// PickupWindow is the ordered set of selectable pickup dates, earliest first,
// as display strings.
type PickupWindow [WindowSize]string

// First is the earliest selectable date. Selecting it triggers the same-day surcharge.
func (w PickupWindow) First() string {
	return w[0]
}

// Contains reports whether date is one of the offered dates.
func (w PickupWindow) Contains(date string) bool {
	if date == "" {
		return false
	}
	for _, d := range w {
		if d == date {
			return true
		}
	}
	return false
}

// Dates returns the window as a slice.
func (w PickupWindow) Dates() []string {
	return append([]string(nil), w[:]...)
}
