package queries

import (
	"errors"

	"sauna/internal/pkg/guard"
)

var (
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetCatalogQuery lists sauna types and durations with their formatted base prices.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

type SaunaTypeResponse struct {
	Quantity   int
	Key        string
	Multiplier int
}

type DurationResponse struct {
	Label string
	Price string
}

type GetCatalogQueryResponse struct {
	SaunaTypes       []SaunaTypeResponse
	Durations        []DurationResponse
	SameDaySurcharge string
}
