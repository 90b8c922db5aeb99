package booking

import (
	"math"
	"time"
)

// BillingDays returns the number of whole days billed for the stay,
// rounded up from the requested duration and never below one.
func BillingDays(checkIn, checkOut time.Time) int {
	days := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice computes the booking price from the service's per-day rate.
func TotalPrice(checkIn, checkOut time.Time, dailyRate float64) float64 {
	return float64(BillingDays(checkIn, checkOut)) * dailyRate
}

// parseDate accepts RFC3339 timestamps or bare dates (2006-01-02).
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
