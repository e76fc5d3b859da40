// Package kafka publishes booking events with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"sauna/internal/core/domain/model/booking"
	"sauna/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	ErrWriterIsRequired   = errors.New("kafka writer is required")
	ErrProducerIsRequired = errors.New("producer name is required")
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewWriter builds a synchronous writer so that publish errors reach the caller.
// Messages are keyed by session so the events of one session keep their order.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

type BookingPublisher struct {
	writer   MessageWriter
	producer string
	logger   *slog.Logger
}

func NewBookingPublisher(writer MessageWriter, producer string, logger *slog.Logger) (*BookingPublisher, error) {
	if writer == nil {
		return nil, ErrWriterIsRequired
	}
	if producer == "" {
		return nil, ErrProducerIsRequired
	}

	return &BookingPublisher{
		writer:   writer,
		producer: producer,
		logger:   logger.With("component", "booking-publisher"),
	}, nil
}

// PublishBookingSent writes one BookingSent envelope for b.
func (p *BookingPublisher) PublishBookingSent(ctx context.Context, b *booking.Booking) error {
	if err := b.Validate(); err != nil {
		return err
	}

	msg, err := p.bookingSentMessage(b)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s for booking %s: %w", EventBookingSent, b.ID(), err)
	}

	p.logger.InfoContext(ctx, "booking sent event published",
		"booking_id", b.ID().String(),
		"session_id", b.SessionID().String())
	return nil
}

func (p *BookingPublisher) Close() error {
	return p.writer.Close()
}

func (p *BookingPublisher) bookingSentMessage(b *booking.Booking) (kafka.Message, error) {
	payload, err := json.Marshal(BookingSentPayload{
		BookingID:      b.ID().String(),
		SessionID:      b.SessionID().String(),
		SubjectKey:     services.SummarySubjectKey,
		SaunaType:      b.SaunaType().Key(),
		Quantity:       b.Quantity(),
		Duration:       b.Duration().Label(),
		PickupDate:     b.PickupDate(),
		Price:          b.Price().String(),
		FormattedPrice: b.FormattedPrice(),
	})
	if err != nil {
		return kafka.Message{}, err
	}

	value, err := json.Marshal(Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventBookingSent,
		EventVersion:  EventBookingSentV1,
		OccurredAt:    b.CreatedAt().UTC(),
		Producer:      p.producer,
		CorrelationID: b.ID().String(),
		Payload:       payload,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(b.SessionID().String()),
		Value: value,
		Time:  b.CreatedAt(),
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(EventBookingSent)},
			{Key: headerEventVersion, Value: []byte(strconv.Itoa(EventBookingSentV1))},
		},
	}, nil
}
