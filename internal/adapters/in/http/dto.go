package http

import (
	"time"

	"sauna/internal/core/application/usecases/queries"
	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/domain/services"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Order struct {
	Quantity      int      `json:"quantity"`
	Duration      string   `json:"duration"`
	PickupDate    string   `json:"pickupDate"`
	Price         string   `json:"price"`
	PickupOptions []string `json:"pickupOptions"`
}

type StartedOrder struct {
	ID    string `json:"id"`
	Order Order  `json:"order"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SelectDurationRequest struct {
	Duration string `json:"duration"`
}

type SelectPickupDateRequest struct {
	PickupDate string `json:"pickupDate"`
}

type Summary struct {
	SubjectKey string `json:"subjectKey"`
	SaunaType  string `json:"saunaType"`
	Duration   string `json:"duration"`
	PickupDate string `json:"pickupDate"`
	Price      string `json:"price"`
}

type SentOrder struct {
	BookingID string `json:"bookingId"`
}

type SaunaType struct {
	Quantity   int    `json:"quantity"`
	Key        string `json:"key"`
	Multiplier int    `json:"multiplier"`
}

type Duration struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

type Catalog struct {
	SaunaTypes       []SaunaType `json:"saunaTypes"`
	Durations        []Duration  `json:"durations"`
	SameDaySurcharge string      `json:"sameDaySurcharge"`
}

type Booking struct {
	ID         string    `json:"id"`
	SaunaType  string    `json:"saunaType"`
	Duration   string    `json:"duration"`
	PickupDate string    `json:"pickupDate"`
	Price      string    `json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toOrder(r order.Record) Order {
	duration := ""
	if r.Duration().IsSet() {
		duration = r.Duration().Label()
	}

	return Order{
		Quantity:      r.Quantity(),
		Duration:      duration,
		PickupDate:    r.PickupDate(),
		Price:         r.Price(),
		PickupOptions: r.PickupOptions().Dates(),
	}
}

func toSummary(s services.Summary) Summary {
	return Summary{
		SubjectKey: s.SubjectKey,
		SaunaType:  s.SaunaTypeKey,
		Duration:   s.Duration.Label(),
		PickupDate: s.PickupDate,
		Price:      s.Price,
	}
}

func toCatalog(c queries.GetCatalogQueryResponse) Catalog {
	resp := Catalog{
		SaunaTypes:       make([]SaunaType, len(c.SaunaTypes)),
		Durations:        make([]Duration, len(c.Durations)),
		SameDaySurcharge: c.SameDaySurcharge,
	}
	for i, st := range c.SaunaTypes {
		resp.SaunaTypes[i] = SaunaType{Quantity: st.Quantity, Key: st.Key, Multiplier: st.Multiplier}
	}
	for i, d := range c.Durations {
		resp.Durations[i] = Duration{Label: d.Label, Price: d.Price}
	}
	return resp
}

func toBookings(bookings []queries.GetSessionBookingsQueryResponse) []Booking {
	resp := make([]Booking, len(bookings))
	for i, b := range bookings {
		resp[i] = Booking{
			ID:         b.ID.String(),
			SaunaType:  b.SaunaType,
			Duration:   b.Duration,
			PickupDate: b.PickupDate,
			Price:      b.Price,
			CreatedAt:  b.CreatedAt,
		}
	}
	return resp
}
