package flight

import (
	"fmt"
	"math"
)

// MaxDiscountRate is the hard cap on any discount applied to an itinerary.
const MaxDiscountRate = 0.10

// NewItinerary builds an itinerary from provider data with the discounted
// price initialized to the base price.
func NewItinerary(id string, legs []Leg, price float64, priceFormatted string) Itinerary {
	return Itinerary{
		ID:                          id,
		Legs:                        legs,
		Price:                       price,
		PriceFormatted:              priceFormatted,
		PriceAfterDiscount:          price,
		PriceAfterDiscountFormatted: FormatPrice(price),
	}
}

// ApplyDiscount recomputes the discounted price from the base price. Rates
// outside [0, MaxDiscountRate] are rejected and leave the itinerary unchanged.
// Because the base price is the input, applying the same rate twice does not
// compound.
func (i *Itinerary) ApplyDiscount(rate float64) error {
	if rate < 0 || rate > MaxDiscountRate {
		return NewDiscountRateExceededError(rate)
	}

	i.PriceAfterDiscount = i.Price * (1 - rate)
	i.PriceAfterDiscountFormatted = FormatPrice(i.PriceAfterDiscount)
	return nil
}

// FormatPrice renders a display string as "$" plus the price rounded up to
// the next whole currency unit.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%d", int64(math.Ceil(price)))
}
