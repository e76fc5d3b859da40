package queries

import (
	"context"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSessionBookingsQueryHandler reads bookings straight from the database
// without loading aggregates.
type GetSessionBookingsQueryHandler struct {
	db *gorm.DB
}

func NewGetSessionBookingsQueryHandler(db *gorm.DB) GetSessionBookingsQueryHandler {
	return GetSessionBookingsQueryHandler{db: db}
}

func (h GetSessionBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetSessionBookingsQuery,
) ([]GetSessionBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			quantity,
			duration,
			pickup_date,
			formatted_price,
			created_at
		FROM bookings
		WHERE session_id = ?
		ORDER BY created_at
	`, query.SessionID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]GetSessionBookingsQueryResponse, 0)
	for rows.Next() {
		var (
			resp     GetSessionBookingsQueryResponse
			id       uuid.UUID
			quantity int
			duration int
		)

		if err = rows.Scan(&id, &quantity, &duration, &resp.PickupDate, &resp.Price, &resp.CreatedAt); err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = bookingID

		saunaType, stErr := catalog.SaunaTypeForQuantity(quantity)
		if stErr != nil {
			return nil, stErr
		}
		resp.SaunaType = saunaType.Key()
		resp.Duration = catalog.Duration(duration).Label()

		bookings = append(bookings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
