package services_test

import (
	"testing"
	"time"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/domain/services"
	"sauna/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCheckout(t *testing.T) {
	engine := newTestEngine()
	checkout := services.NewOrderCheckout(engine)
	now := time.Date(2024, time.July, 21, 10, 0, 0, 0, time.UTC)
	window := services.GeneratePickupWindow(now)

	complete := order.NewRecord(engine, window).
		WithQuantity(engine, 3).
		WithDuration(engine, catalog.ThirtyMinutes).
		WithPickupDate(engine, window.First())

	t.Run("should summarize a complete record", func(t *testing.T) {
		summary, err := checkout.Summarize(complete)

		require.NoError(t, err)
		assert.Equal(t, services.Summary{
			SubjectKey:   "new_saunavuoro_order",
			SaunaTypeKey: "puu_sauna",
			Duration:     catalog.ThirtyMinutes,
			PickupDate:   "Mon Jul 22",
			Price:        "$37.00",
		}, summary)
	})

	t.Run("should refuse to summarize an incomplete record", func(t *testing.T) {
		_, err := checkout.Summarize(order.NewRecord(engine, window).WithQuantity(engine, 1))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should book with the record price", func(t *testing.T) {
		sessionID := kernel.NewUUID()

		b, err := checkout.Book(sessionID, complete, now)

		require.NoError(t, err)
		assert.True(t, b.SessionID().IsEqual(sessionID))
		assert.True(t, b.Price().IsEqual(kernel.MustMoney("37.00")))
		assert.Equal(t, complete.Price(), b.FormattedPrice())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("should refuse to book quantity outside the catalog", func(t *testing.T) {
		r := complete.WithQuantity(engine, 6)

		b, err := checkout.Book(kernel.NewUUID(), r, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, b)
	})
}
