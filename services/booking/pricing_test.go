package booking

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBillingDays(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"two nights", date("2026-01-01"), date("2026-01-03"), 2},
		{"single night", date("2026-01-01"), date("2026-01-02"), 1},
		{"partial day rounds up", date("2026-01-01"), date("2026-01-01").Add(6 * time.Hour), 1},
		{"36 hours rounds to two", date("2026-01-01"), date("2026-01-01").Add(36 * time.Hour), 2},
		{"week", date("2026-01-01"), date("2026-01-08"), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BillingDays(tc.checkIn, tc.checkOut); got != tc.want {
				t.Errorf("BillingDays(%v, %v) = %d, want %d", tc.checkIn, tc.checkOut, got, tc.want)
			}
		})
	}
}

func TestTotalPrice(t *testing.T) {
	got := TotalPrice(date("2026-01-01"), date("2026-01-03"), 100)
	if got != 200 {
		t.Errorf("TotalPrice = %v, want 200", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("2026-03-15"); err != nil {
		t.Errorf("bare date rejected: %v", err)
	}
	if _, err := parseDate("2026-03-15T14:00:00Z"); err != nil {
		t.Errorf("RFC3339 rejected: %v", err)
	}
	if _, err := parseDate("15/03/2026"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
