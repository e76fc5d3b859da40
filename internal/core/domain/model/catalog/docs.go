// Package catalog holds the fixed reference data of the sauna ordering flow.
//
// The package includes:
//   - SaunaType: the bookable sauna variants with their relative price multipliers
//   - Duration: the bookable session lengths, each carrying its base price
//
// Labels are opaque keys; translating them for display is left to the presentation layer.
package catalog
