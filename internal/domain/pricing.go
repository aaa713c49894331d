package domain

import (
	"math"

	"github.com/m04kA/GSO-BookingService/pkg/types"
)

// Pricing is the server-side breakdown of a booking amount
type Pricing struct {
	Amount        float64
	DiscountPct   float64
	DiscountValue float64
	FinalAmount   float64
}

// DurationHours returns max(1, minutes/60). Unparsable times count as one hour.
func DurationHours(start, end types.TimeString) float64 {
	s, okStart := start.Minutes()
	e, okEnd := end.Minutes()
	if !okStart || !okEnd {
		return MinDurationHours
	}
	return math.Max(MinDurationHours, float64(e-s)/60)
}

// DefaultAmount is round(base * max(1, hours)).
func DefaultAmount(base float64, hours float64) float64 {
	return math.Round(base * math.Max(MinDurationHours, hours))
}

// ComputePricing applies the discount: value = round(amount*pct/100), final = max(0, amount-value).
func ComputePricing(amount, discountPct float64) Pricing {
	value := math.Round(amount * discountPct / 100)
	return Pricing{
		Amount:        amount,
		DiscountPct:   discountPct,
		DiscountValue: value,
		FinalAmount:   math.Max(0, amount-value),
	}
}
