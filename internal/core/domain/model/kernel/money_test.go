package kernel_test

import (
	"testing"

	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("9.00"))

		require.NoError(t, err)
		assert.Equal(t, "9.00", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	_, err := kernel.MoneyFromString("nine")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Panics(t, func() { kernel.MustMoney("nine") })
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("times and add", func(t *testing.T) {
		total := kernel.MustMoney("9.00").Times(6).Add(kernel.MustMoney("10.00"))

		assert.True(t, total.IsEqual(kernel.MustMoney("64")))
		assert.Equal(t, "64.00", total.String())
	})

	t.Run("times with non positive count is zero", func(t *testing.T) {
		assert.True(t, kernel.MustMoney("17.00").Times(0).IsZero())
		assert.True(t, kernel.MustMoney("17.00").Times(-2).IsZero())
	})

	t.Run("repeated addition does not drift", func(t *testing.T) {
		// Given
		dime := kernel.MustMoney("0.10")
		sum := kernel.ZeroMoney()

		// When
		for i := 0; i < 1000; i++ {
			sum = sum.Add(dime)
		}

		// Then
		assert.Equal(t, "100.00", sum.String())
	})
}

func TestMoneyFormatter(t *testing.T) {
	t.Run("formats en-US dollars", func(t *testing.T) {
		f := kernel.MustMoneyFormatter("en-US", "USD", "$")

		assert.Equal(t, "$64.00", f.Format(kernel.MustMoney("64")))
		assert.Equal(t, "$0.00", f.Format(kernel.ZeroMoney()))
		assert.Equal(t, "$1,234.50", f.Format(kernel.MustMoney("1234.5")))
	})

	t.Run("falls back to the ISO code when no symbol is configured", func(t *testing.T) {
		f := kernel.MustMoneyFormatter("en-US", "EUR", "")

		assert.Equal(t, "EUR 5.00", f.Format(kernel.MustMoney("5")))
	})

	t.Run("rejects unknown locale and currency together", func(t *testing.T) {
		_, err := kernel.NewMoneyFormatter("???", "XXXX", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "locale")
		assert.Contains(t, err.Error(), "currency")
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var f kernel.MoneyFormatter

		assert.Equal(t, kernel.ErrMoneyFormatterIsNotConstructed, f.Validate())
	})
}
