package catalog

import "sauna/internal/pkg/errs"

// SaunaType is a product variant. Multiplier is an independent field; it happens
// to equal position+1 in the current catalog but nothing relies on that.
type SaunaType struct {
	key        string
	multiplier int
}

func (s SaunaType) Key() string {
	return s.key
}

func (s SaunaType) Multiplier() int {
	return s.multiplier
}

func getSaunaTypes() []SaunaType {
	return []SaunaType{
		{key: "ir_sauna", multiplier: 1},
		{key: "sahko_sauna", multiplier: 2},
		{key: "puu_sauna", multiplier: 3},
	}
}

// SaunaTypes returns the variants in display order. The slice is a fresh copy.
func SaunaTypes() []SaunaType {
	return getSaunaTypes()
}

// SaunaTypeForQuantity returns the variant selected by a 1-based quantity.
func SaunaTypeForQuantity(quantity int) (SaunaType, error) {
	types := getSaunaTypes()
	if quantity < 1 || quantity > len(types) {
		return SaunaType{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, len(types))
	}
	return types[quantity-1], nil
}

// ValidateQuantity reports whether quantity addresses a catalog variant.
func ValidateQuantity(quantity int) error {
	_, err := SaunaTypeForQuantity(quantity)
	return err
}
