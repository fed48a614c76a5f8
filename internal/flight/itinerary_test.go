package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItinerary_DiscountStartsAtBasePrice(t *testing.T) {
	it := NewItinerary("itin-1", nil, 100, "$100")

	assert.Equal(t, 100.0, it.Price)
	assert.Equal(t, 100.0, it.PriceAfterDiscount)
	assert.Equal(t, "$100", it.PriceAfterDiscountFormatted)
}

func TestApplyDiscount(t *testing.T) {
	it := NewItinerary("itin-1", nil, 100, "$100")

	err := it.ApplyDiscount(0.10)
	require.NoError(t, err)

	assert.InDelta(t, 90.0, it.PriceAfterDiscount, 1e-9)
	assert.Equal(t, "$90", it.PriceAfterDiscountFormatted)
	assert.Equal(t, 100.0, it.Price, "base price must not change")
}

func TestApplyDiscount_RateAboveCapRejected(t *testing.T) {
	it := NewItinerary("itin-1", nil, 100, "$100")

	err := it.ApplyDiscount(0.11)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorCodeDiscountRateExceeded, appErr.Code)
	assert.Equal(t, 100.0, it.PriceAfterDiscount, "rejected discount must not mutate the itinerary")
	assert.Equal(t, "$100", it.PriceAfterDiscountFormatted)
}

func TestApplyDiscount_NegativeRateRejected(t *testing.T) {
	it := NewItinerary("itin-1", nil, 100, "$100")

	err := it.ApplyDiscount(-0.05)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorCodeDiscountRateExceeded, appErr.Code)
	assert.Equal(t, 100.0, it.PriceAfterDiscount)
}

func TestApplyDiscount_DoesNotCompound(t *testing.T) {
	it := NewItinerary("itin-1", nil, 100, "$100")

	require.NoError(t, it.ApplyDiscount(0.10))
	require.NoError(t, it.ApplyDiscount(0.10))

	assert.InDelta(t, 90.0, it.PriceAfterDiscount, 1e-9)
}

func TestFormatPrice_RoundsUp(t *testing.T) {
	assert.Equal(t, "$72", FormatPrice(71.1))
	assert.Equal(t, "$72", FormatPrice(72.0))
	assert.Equal(t, "$73", FormatPrice(72.0001))
	assert.Equal(t, "$0", FormatPrice(0))
}
