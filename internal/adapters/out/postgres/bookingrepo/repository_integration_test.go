package bookingrepo_test

import (
	"context"
	"testing"
	"time"

	"sauna/internal/adapters/out/postgres/bookingrepo"
	"sauna/internal/core/domain/model/booking"
	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// BookingRepositoryIntegrationTestSuite runs GormBookingRepository against a real PostgreSQL.
type BookingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bookingrepo.GormBookingRepository
	tracker    *MockAggregateTracker
}

func (suite *BookingRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&bookingrepo.BookingDTO{}))
}

func (suite *BookingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bookings").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = bookingrepo.NewGormBookingRepository(suite.db, suite.tracker)
}

func (suite *BookingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BookingRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	b := suite.newBooking(kernel.NewUUID(), 6*time.Hour)
	suite.tracker.On("TrackAggregate", b.ID(), b).Once()

	suite.Require().NoError(suite.repository.Add(ctx, b))

	got, err := suite.repository.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(b.ID()))
	suite.True(got.SessionID().IsEqual(b.SessionID()))
	suite.Equal(b.Quantity(), got.Quantity())
	suite.Equal(b.Duration(), got.Duration())
	suite.Equal(b.PickupDate(), got.PickupDate())
	suite.True(got.Price().IsEqual(b.Price()))
	suite.Equal(b.FormattedPrice(), got.FormattedPrice())
	suite.WithinDuration(b.CreatedAt(), got.CreatedAt(), time.Millisecond)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BookingRepositoryIntegrationTestSuite) TestAdd_Duplicate_ReturnsDuplicateError() {
	ctx := context.Background()
	b := suite.newBooking(kernel.NewUUID(), 0)
	suite.tracker.On("TrackAggregate", b.ID(), b).Once()
	suite.Require().NoError(suite.repository.Add(ctx, b))

	err := suite.repository.Add(ctx, b)

	suite.Require().ErrorIs(err, errs.ErrObjectIsDuplicate)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BookingRepositoryIntegrationTestSuite) TestAdd_UnconstructedBooking_IsRejected() {
	err := suite.repository.Add(context.Background(), &booking.Booking{})

	suite.Require().ErrorIs(err, booking.ErrBookingIsNotConstructed)
	suite.assertBookingCount(0)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *BookingRepositoryIntegrationTestSuite) TestGetAllBySession_OrdersByCreation() {
	ctx := context.Background()
	sessionID := kernel.NewUUID()
	later := suite.newBooking(sessionID, 2*time.Hour)
	earlier := suite.newBooking(sessionID, time.Hour)
	other := suite.newBooking(kernel.NewUUID(), 0)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	for _, b := range []*booking.Booking{later, earlier, other} {
		suite.Require().NoError(suite.repository.Add(ctx, b))
	}

	got, err := suite.repository.GetAllBySession(ctx, sessionID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].ID().IsEqual(earlier.ID()))
	suite.True(got[1].ID().IsEqual(later.ID()))
}

func (suite *BookingRepositoryIntegrationTestSuite) newBooking(sessionID kernel.UUID, offset time.Duration) *booking.Booking {
	b, err := booking.NewBooking(
		kernel.NewUUID(),
		sessionID,
		3,
		catalog.ThirtyMinutes,
		"Mon Jul 22",
		kernel.MustMoney("37.00"),
		"$37.00",
		time.Date(2024, time.July, 21, 10, 0, 0, 0, time.UTC).Add(offset),
	)
	suite.Require().NoError(err)
	return b
}

func (suite *BookingRepositoryIntegrationTestSuite) assertBookingCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&bookingrepo.BookingDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestBookingRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	suite.Run(t, new(BookingRepositoryIntegrationTestSuite))
}
