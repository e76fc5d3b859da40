package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"sauna/internal/core/application/usecases/queries"
	"sauna/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const orderEventName = "order"

// StreamOrderEvents handles GET /api/v1/orders/:id/events. It writes the current
// record, then every published one, as server-sent events until the client goes
// away or the session ends.
func (s *Server) StreamOrderEvents(ctx echo.Context) error {
	sessionID, err := sessionIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewSubscribeOrderQuery(sessionID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	sub, err := s.handlers.SubscribeOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	defer sub.Unsubscribe()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err = writeOrderEvent(w, sub.Current); err != nil {
		return nil //nolint:nilerr // client is gone
	}

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case record, ok := <-sub.Updates:
			if !ok {
				return nil
			}
			if err = writeOrderEvent(w, record); err != nil {
				return nil //nolint:nilerr // client is gone
			}
		}
	}
}

func writeOrderEvent(w *echo.Response, r order.Record) error {
	data, err := json.Marshal(toOrder(r))
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", orderEventName, data); err != nil {
		return err
	}
	w.Flush()
	return nil
}
