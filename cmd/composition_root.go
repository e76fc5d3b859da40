package cmd

import (
	"log/slog"

	httpadapter "sauna/internal/adapters/in/http"
	kafkaadapter "sauna/internal/adapters/out/kafka"
	"sauna/internal/adapters/out/memory/sessionrepo"
	"sauna/internal/adapters/out/postgres"
	redisadapter "sauna/internal/adapters/out/redis"
	"sauna/internal/core/application/usecases/commands"
	"sauna/internal/core/application/usecases/queries"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/core/domain/services"
	"sauna/internal/jobs"
	"sauna/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ServiceName is the producer name stamped on published events.
const ServiceName = "sauna-order-api"

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sessions   *sessionrepo.InMemorySessionRepository
	sendGuard  *redisadapter.SendGuard
	publisher  *kafkaadapter.BookingPublisher
	clock      clock.Clock
	engine     services.PricingEngine
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	rdb redis.UniversalClient,
	publisher *kafkaadapter.BookingPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	formatter, err := kernel.NewMoneyFormatter(config.Locale, config.Currency, config.CurrencySymbol)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   sessionrepo.NewInMemorySessionRepository(),
		sendGuard:  redisadapter.NewSendGuard(rdb, redisadapter.DefaultSendGuardTTL),
		publisher:  publisher,
		clock:      clock.System{},
		engine:     services.NewPricingEngine(formatter),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.sessions, c.clock, c.engine, c.logger)
}

func (c *CompositionRoot) CreateSetQuantityCommandHandler() commands.SetQuantityCommandHandler {
	return commands.NewSetQuantityCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSelectDurationCommandHandler() commands.SelectDurationCommandHandler {
	return commands.NewSelectDurationCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSelectPickupDateCommandHandler() commands.SelectPickupDateCommandHandler {
	return commands.NewSelectPickupDateCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateResetOrderCommandHandler() commands.ResetOrderCommandHandler {
	return commands.NewResetOrderCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSendOrderCommandHandler() commands.SendOrderCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendOrderCommandHandler(
		c.sessions,
		services.NewOrderCheckout(c.engine),
		f,
		c.publisher,
		c.sendGuard,
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateEndSessionCommandHandler() commands.EndSessionCommandHandler {
	return commands.NewEndSessionCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateEvictIdleSessionsCommandHandler() commands.EvictIdleSessionsCommandHandler {
	return commands.NewEvictIdleSessionsCommandHandler(c.sessions, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.sessions, services.NewOrderCheckout(c.engine))
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.engine)
}

func (c *CompositionRoot) CreateGetSessionBookingsQueryHandler() queries.GetSessionBookingsQueryHandler {
	return queries.NewGetSessionBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSubscribeOrderQueryHandler() queries.SubscribeOrderQueryHandler {
	return queries.NewSubscribeOrderQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		StartOrder:         c.CreateStartOrderCommandHandler(),
		SetQuantity:        c.CreateSetQuantityCommandHandler(),
		SelectDuration:     c.CreateSelectDurationCommandHandler(),
		SelectPickupDate:   c.CreateSelectPickupDateCommandHandler(),
		ResetOrder:         c.CreateResetOrderCommandHandler(),
		SendOrder:          c.CreateSendOrderCommandHandler(),
		EndSession:         c.CreateEndSessionCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderSummary:    c.CreateGetOrderSummaryQueryHandler(),
		GetCatalog:         c.CreateGetCatalogQueryHandler(),
		GetSessionBookings: c.CreateGetSessionBookingsQueryHandler(),
		SubscribeOrder:     c.CreateSubscribeOrderQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateEvictIdleSessionsCommandHandler(),
		c.config.SessionEvictionSchedule,
		c.config.SessionIdleTTL,
		c.logger,
	)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}
