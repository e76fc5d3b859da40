// Package http exposes the order flow as a JSON API on echo.
package http

import (
	"log/slog"
	"net/http"

	"sauna/internal/core/application/usecases/commands"
	"sauna/internal/core/application/usecases/queries"
	"sauna/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	StartOrder       commands.StartOrderCommandHandler
	SetQuantity      commands.SetQuantityCommandHandler
	SelectDuration   commands.SelectDurationCommandHandler
	SelectPickupDate commands.SelectPickupDateCommandHandler
	ResetOrder       commands.ResetOrderCommandHandler
	SendOrder        commands.SendOrderCommandHandler
	EndSession       commands.EndSessionCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetOrderSummary    queries.GetOrderSummaryQueryHandler
	GetCatalog         queries.GetCatalogQueryHandler
	GetSessionBookings queries.GetSessionBookingsQueryHandler
	SubscribeOrder     queries.SubscribeOrderQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// RegisterRoutes mounts every endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/catalog", s.GetCatalog)
	api.POST("/orders", s.StartOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.EndSession)
	api.PUT("/orders/:id/quantity", s.SetQuantity)
	api.PUT("/orders/:id/duration", s.SelectDuration)
	api.PUT("/orders/:id/pickup-date", s.SelectPickupDate)
	api.POST("/orders/:id/reset", s.ResetOrder)
	api.GET("/orders/:id/summary", s.GetOrderSummary)
	api.POST("/orders/:id/send", s.SendOrder)
	api.GET("/orders/:id/bookings", s.GetSessionBookings)
	api.GET("/orders/:id/events", s.StreamOrderEvents)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetCatalog handles GET /api/v1/catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	resp, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCatalog(resp))
}

// StartOrder handles POST /api/v1/orders.
func (s *Server) StartOrder(ctx echo.Context) error {
	sessionID := kernel.NewUUID()
	cmd, err := commands.NewStartOrderCommand(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.handlers.StartOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StartedOrder{ID: sessionID.String(), Order: toOrder(record)})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(record))
}

// SetQuantity handles PUT /api/v1/orders/:id/quantity.
func (s *Server) SetQuantity(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req SetQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetQuantityCommand(sessionID, req.Quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.handlers.SetQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(record))
}

// SelectDuration handles PUT /api/v1/orders/:id/duration.
func (s *Server) SelectDuration(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req SelectDurationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSelectDurationCommand(sessionID, req.Duration)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.handlers.SelectDuration.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(record))
}

// SelectPickupDate handles PUT /api/v1/orders/:id/pickup-date.
func (s *Server) SelectPickupDate(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req SelectPickupDateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSelectPickupDateCommand(sessionID, req.PickupDate)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.handlers.SelectPickupDate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(record))
}

// ResetOrder handles POST /api/v1/orders/:id/reset.
func (s *Server) ResetOrder(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewResetOrderCommand(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	record, err := s.handlers.ResetOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(record))
}

// GetOrderSummary handles GET /api/v1/orders/:id/summary.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderSummaryQuery(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	summary, err := s.handlers.GetOrderSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSummary(summary))
}

// SendOrder handles POST /api/v1/orders/:id/send.
func (s *Server) SendOrder(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSendOrderCommand(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	bookingID, err := s.handlers.SendOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SentOrder{BookingID: bookingID.String()})
}

// GetSessionBookings handles GET /api/v1/orders/:id/bookings.
func (s *Server) GetSessionBookings(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetSessionBookingsQuery(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	bookings, err := s.handlers.GetSessionBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBookings(bookings))
}

// EndSession handles DELETE /api/v1/orders/:id.
func (s *Server) EndSession(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewEndSessionCommand(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.EndSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func sessionIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
