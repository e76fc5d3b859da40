package catalog_test

import (
	"testing"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaunaTypes(t *testing.T) {
	types := catalog.SaunaTypes()

	require.Len(t, types, 3)
	assert.Equal(t, "ir_sauna", types[0].Key())
	assert.Equal(t, 1, types[0].Multiplier())
	assert.Equal(t, "sahko_sauna", types[1].Key())
	assert.Equal(t, 2, types[1].Multiplier())
	assert.Equal(t, "puu_sauna", types[2].Key())
	assert.Equal(t, 3, types[2].Multiplier())
}

func TestSaunaTypeForQuantity(t *testing.T) {
	t.Run("should resolve 1-based quantity", func(t *testing.T) {
		st, err := catalog.SaunaTypeForQuantity(2)

		require.NoError(t, err)
		assert.Equal(t, "sahko_sauna", st.Key())
	})

	for _, q := range []int{-1, 0, 4} {
		t.Run("should reject out of range quantity", func(t *testing.T) {
			_, err := catalog.SaunaTypeForQuantity(q)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			require.ErrorIs(t, catalog.ValidateQuantity(q), errs.ErrValueIsOutOfRange)
		})
	}
}

func TestDuration_Price(t *testing.T) {
	testCases := []struct {
		duration catalog.Duration
		label    string
		price    string
	}{
		{catalog.FifteenMinutes, "15 min", "5.00"},
		{catalog.ThirtyMinutes, "30 min", "9.00"},
		{catalog.OneHour, "1h", "17.00"},
		{catalog.TwoHours, "2h", "30.00"},
		{catalog.ThreeHours, "3h", "40.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.label, tc.duration.Label())
			assert.Equal(t, tc.price, tc.duration.Price().String())
			require.NoError(t, tc.duration.Validate())
		})
	}

	t.Run("unknown prices at zero", func(t *testing.T) {
		assert.True(t, catalog.Unknown.Price().IsZero())
		assert.True(t, catalog.Duration(42).Price().IsZero())
		assert.Empty(t, catalog.Unknown.Label())
		assert.Equal(t, "Unknown", catalog.Unknown.String())
		assert.False(t, catalog.Unknown.IsSet())
	})
}

func TestParseDuration(t *testing.T) {
	t.Run("should parse every known label", func(t *testing.T) {
		for _, d := range catalog.Durations() {
			parsed, err := catalog.ParseDuration(d.Label())

			require.NoError(t, err)
			assert.Equal(t, d, parsed)
		}
	})

	t.Run("should reject unknown label", func(t *testing.T) {
		d, err := catalog.ParseDuration("4h")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, catalog.Unknown, d)
	})

	t.Run("should require a label", func(t *testing.T) {
		_, err := catalog.ParseDuration("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
