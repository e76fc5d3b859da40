// Package kernel holds the value objects shared across the sauna ordering domain:
//   - UUID: identifiers for order sessions and bookings
//   - Money: decimal amounts used by the pricing engine
//   - MoneyFormatter: locale aware rendering of Money
//
// Value objects are immutable and safe for concurrent use.
package kernel
