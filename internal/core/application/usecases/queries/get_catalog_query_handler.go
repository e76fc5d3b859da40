package queries

import (
	"context"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/services"
)

type GetCatalogQueryHandler struct {
	engine services.PricingEngine
}

func NewGetCatalogQueryHandler(engine services.PricingEngine) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{engine: engine}
}

func (h GetCatalogQueryHandler) Handle(_ context.Context, query GetCatalogQuery) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	types := catalog.SaunaTypes()
	durations := catalog.Durations()
	resp := GetCatalogQueryResponse{
		SaunaTypes:       make([]SaunaTypeResponse, 0, len(types)),
		Durations:        make([]DurationResponse, 0, len(durations)),
		SameDaySurcharge: h.engine.Format(services.SameDaySurcharge),
	}

	for i, st := range types {
		resp.SaunaTypes = append(resp.SaunaTypes, SaunaTypeResponse{
			Quantity:   i + 1,
			Key:        st.Key(),
			Multiplier: st.Multiplier(),
		})
	}
	for _, d := range durations {
		resp.Durations = append(resp.Durations, DurationResponse{
			Label: d.Label(),
			Price: h.engine.Format(d.Price()),
		})
	}

	return resp, nil
}
