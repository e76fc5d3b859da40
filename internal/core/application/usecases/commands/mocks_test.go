package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sauna/internal/core/application/orderstore"
	"sauna/internal/core/application/usecases/commands"
	"sauna/internal/core/domain/model/booking"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/core/domain/services"
	"sauna/internal/core/ports"
	"sauna/internal/pkg/clock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sunday = time.Date(2024, time.July, 21, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine() services.PricingEngine {
	return services.NewPricingEngine(kernel.MustMoneyFormatter("en-US", "USD", "$"))
}

func newTestSession(t *testing.T) *orderstore.Session {
	t.Helper()
	clk := clock.NewFixed(sunday)
	store := orderstore.NewStore(clk, newTestEngine(), discardLogger())
	t.Cleanup(store.Close)
	session, err := orderstore.NewSession(kernel.NewUUID(), store, sunday)
	require.NoError(t, err)
	return session
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *orderstore.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*orderstore.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderstore.Session), args.Error(1)
}

func (m *MockSessionRepository) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionRepository) RemoveIdle(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAllBySession(ctx context.Context, id kernel.UUID) ([]*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

type MockBookingUoW struct{ mock.Mock }

func (m *MockBookingUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockBookingUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockBookingUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockBookingUoW) BookingRepository() ports.BookingRepository {
	return m.Called().Get(0).(ports.BookingRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	return m.Called().Get(0).(commands.BookingUoW)
}

type MockBookingPublisher struct{ mock.Mock }

func (m *MockBookingPublisher) PublishBookingSent(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

type MockSendGuard struct{ mock.Mock }

func (m *MockSendGuard) Acquire(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockSendGuard) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
