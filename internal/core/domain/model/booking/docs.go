// Package booking provides the Booking aggregate: a confirmed sauna order that
// has been sent by the customer.
//
// Key business rules:
//   - A booking has a valid identifier and references the session it came from
//   - The sauna type, duration and pickup date must all be selected
//   - The price is fixed at the moment of sending and never recomputed
package booking
