// Package services holds the stateless rules of the order flow:
//   - GeneratePickupWindow: the four pickup dates offered from a given instant
//   - PricingEngine: the total price of a selection, including the same-day surcharge
//   - OrderCheckout: the review summary and the booking built from a complete order
package services
