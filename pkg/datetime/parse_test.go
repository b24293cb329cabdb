package datetime

import (
	"testing"
	"time"
)

func TestOffsetDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
	}{
		{"Forward one month", "2025-01", 1, "2025-02"},
		{"Forward across year boundary", "2025-11", 3, "2026-02"},
		{"Backward one month", "2025-01", -1, "2024-12"},
		{"Forward three years", "2025-06", 36, "2028-06"},
		{"Zero offset", "2025-06", 0, "2025-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, DateTimeLayout, tt.months)
			if err != nil {
				t.Fatalf("OffsetDate(%s, %d) returned error: %v", tt.date, tt.months, err)
			}
			if result != tt.expected {
				t.Errorf("OffsetDate(%s, %d) = %s, expected %s", tt.date, tt.months, result, tt.expected)
			}
		})
	}
}

func TestOffsetDateInvalid(t *testing.T) {
	if _, err := OffsetDate("not-a-date", DateTimeLayout, 1); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestMonthsUntil(t *testing.T) {
	from := MustParseTime(DateTimeLayout, "2025-01")

	tests := []struct {
		name     string
		to       string
		expected int
	}{
		{"Same month", "2025-01", 0},
		{"Next month", "2025-02", 1},
		{"One year out", "2026-01", 12},
		{"Past target clamps to zero", "2024-06", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthsUntil(from, tt.to)
			if err != nil {
				t.Fatalf("MonthsUntil returned error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("MonthsUntil(%v, %s) = %d, expected %d", from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestMonthsUntilInvalid(t *testing.T) {
	if _, err := MonthsUntil(time.Now(), "bogus"); err == nil {
		t.Error("expected error for invalid target date")
	}
}
