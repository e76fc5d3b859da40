package kafka

import (
	"encoding/json"
	"time"
)

const (
	EventBookingSent   = "BookingSent"
	EventBookingSentV1 = 1

	headerEventType    = "x-event-type"
	headerEventVersion = "x-event-version"
)

// Envelope wraps every event written by this service.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// BookingSentPayload is the body of a BookingSent event. Price is the decimal amount,
// FormattedPrice the string the customer saw.
type BookingSentPayload struct {
	BookingID      string `json:"booking_id"`
	SessionID      string `json:"session_id"`
	SubjectKey     string `json:"subject_key"`
	SaunaType      string `json:"sauna_type"`
	Quantity       int    `json:"quantity"`
	Duration       string `json:"duration"`
	PickupDate     string `json:"pickup_date"`
	Price          string `json:"price"`
	FormattedPrice string `json:"formatted_price"`
}

// UnwrapPayload decodes the payload of an envelope into T.
func UnwrapPayload[T any](payload json.RawMessage) (T, error) {
	var t T
	err := json.Unmarshal(payload, &t)
	return t, err
}
