package services

import (
	"math"
	"time"
)

// CalcBookingTotalPrice computes the stored total of a booking from its
// date range and the nightly price of its camping place. Partial days
// round up to the next full night (ceiling of the exact difference divided
// by 24h). Missing dates, an inverted range or a non-positive price yield
// zero. Create and update both go through here so the total is always
// recomputed server side, never taken from the client.
func CalcBookingTotalPrice(start, end *time.Time, pricePerNight float64) float64 {
	if pricePerNight <= 0 {
		return 0
	}
	if start == nil || end == nil {
		return 0
	}
	if !end.After(*start) {
		return 0
	}

	nights := math.Ceil(float64(end.Sub(*start).Milliseconds()) / float64((24 * time.Hour).Milliseconds()))
	return nights * pricePerNight
}
