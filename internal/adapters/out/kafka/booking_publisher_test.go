package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	kafkaadapter "sauna/internal/adapters/out/kafka"
	"sauna/internal/core/domain/model/booking"
	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct{ mock.Mock }

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockMessageWriter) Close() error {
	return m.Called().Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		2,
		catalog.OneHour,
		"Mon Jul 22",
		kernel.MustMoney("44.00"),
		"$44.00",
		time.Date(2024, time.July, 21, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return b
}

func TestNewBookingPublisher(t *testing.T) {
	t.Run("requires a writer", func(t *testing.T) {
		_, err := kafkaadapter.NewBookingPublisher(nil, "sauna-api", discardLogger())
		require.ErrorIs(t, err, kafkaadapter.ErrWriterIsRequired)
	})

	t.Run("requires a producer name", func(t *testing.T) {
		_, err := kafkaadapter.NewBookingPublisher(new(MockMessageWriter), "", discardLogger())
		require.ErrorIs(t, err, kafkaadapter.ErrProducerIsRequired)
	})
}

func TestBookingPublisher_PublishBookingSent(t *testing.T) {
	t.Run("writes an enveloped event keyed by session", func(t *testing.T) {
		// Given
		b := newTestBooking(t)
		writer := new(MockMessageWriter)
		var written []kafka.Message
		writer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()
		publisher, err := kafkaadapter.NewBookingPublisher(writer, "sauna-api", discardLogger())
		require.NoError(t, err)

		// When
		err = publisher.PublishBookingSent(testContext(t), b)

		// Then
		require.NoError(t, err)
		require.Len(t, written, 1)
		msg := written[0]
		assert.Equal(t, b.SessionID().String(), string(msg.Key))
		assert.Contains(t, msg.Headers, kafka.Header{Key: "x-event-type", Value: []byte("BookingSent")})
		assert.Contains(t, msg.Headers, kafka.Header{Key: "x-event-version", Value: []byte("1")})

		var env kafkaadapter.Envelope
		require.NoError(t, json.Unmarshal(msg.Value, &env))
		assert.Equal(t, kafkaadapter.EventBookingSent, env.EventType)
		assert.Equal(t, 1, env.EventVersion)
		assert.Equal(t, "sauna-api", env.Producer)
		assert.Equal(t, b.ID().String(), env.CorrelationID)
		assert.NotEmpty(t, env.EventID)
		assert.True(t, env.OccurredAt.Equal(b.CreatedAt()))

		payload, err := kafkaadapter.UnwrapPayload[kafkaadapter.BookingSentPayload](env.Payload)
		require.NoError(t, err)
		assert.Equal(t, kafkaadapter.BookingSentPayload{
			BookingID:      b.ID().String(),
			SessionID:      b.SessionID().String(),
			SubjectKey:     "new_saunavuoro_order",
			SaunaType:      "sahko_sauna",
			Quantity:       2,
			Duration:       "1h",
			PickupDate:     "Mon Jul 22",
			Price:          "44.00",
			FormattedPrice: "$44.00",
		}, payload)
		writer.AssertExpectations(t)
	})

	t.Run("returns the writer error", func(t *testing.T) {
		writer := new(MockMessageWriter)
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
		publisher, err := kafkaadapter.NewBookingPublisher(writer, "sauna-api", discardLogger())
		require.NoError(t, err)

		err = publisher.PublishBookingSent(testContext(t), newTestBooking(t))

		require.ErrorContains(t, err, "broker down")
	})

	t.Run("rejects an unconstructed booking", func(t *testing.T) {
		writer := new(MockMessageWriter)
		publisher, err := kafkaadapter.NewBookingPublisher(writer, "sauna-api", discardLogger())
		require.NoError(t, err)

		err = publisher.PublishBookingSent(testContext(t), &booking.Booking{})

		require.ErrorIs(t, err, booking.ErrBookingIsNotConstructed)
		writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
	})
}

func TestBookingPublisher_Close(t *testing.T) {
	writer := new(MockMessageWriter)
	writer.On("Close").Return(nil).Once()
	publisher, err := kafkaadapter.NewBookingPublisher(writer, "sauna-api", discardLogger())
	require.NoError(t, err)

	require.NoError(t, publisher.Close())
	writer.AssertExpectations(t)
}
