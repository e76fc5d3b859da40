// Package order models the in-progress sauna order.
//
// The package includes:
//   - Record: an immutable snapshot of the order with its derived price
//   - PickupWindow: the four pickup dates offered to the customer
//
// Key business rules:
//   - The price is never set directly; every With* method recomputes it through a Pricer
//   - An order can be sent only when quantity, duration and pickup date are all selected
package order
