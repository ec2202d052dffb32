package dateutil

import (
	"testing"
	"time"
)

func TestDay(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	input := time.Date(2025, 1, 15, 23, 30, 45, 123456789, loc)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := Day(input)

	if !result.Equal(expected) {
		t.Errorf("Day(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Wednesday returns Monday",
			input:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), // Wednesday
			expected: Date(2025, 1, 13),                             // Monday
		},
		{
			name:     "Monday returns same Monday",
			input:    time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC),
			expected: Date(2025, 1, 13),
		},
		{
			name:     "Sunday returns previous Monday",
			input:    time.Date(2025, 1, 19, 12, 0, 0, 0, time.UTC), // Sunday
			expected: Date(2025, 1, 13),
		},
		{
			name:     "Crosses month boundary",
			input:    Date(2024, 9, 1), // Sunday
			expected: Date(2024, 8, 26),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{"February leap year", Date(2024, 2, 10), Date(2024, 2, 29)},
		{"February non-leap year", Date(2025, 2, 10), Date(2025, 2, 28)},
		{"December", Date(2024, 12, 31), Date(2024, 12, 31)},
		{"April", Date(2024, 4, 1), Date(2024, 4, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EndOfMonth(tt.input)

			if !result.Equal(tt.want) {
				t.Errorf("EndOfMonth(%v) = %v, want %v",
					FormatISODate(tt.input), FormatISODate(result), FormatISODate(tt.want))
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", Date(2025, 1, 18), true},
		{"Sunday is weekend", Date(2025, 1, 19), true},
		{"Monday is not weekend", Date(2025, 1, 13), false},
		{"Friday is not weekend", Date(2025, 1, 17), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestEachDay(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"Single day", Date(2024, 7, 1), Date(2024, 7, 1), 1},
		{"Whole July", Date(2024, 7, 1), Date(2024, 7, 31), 31},
		{"Across leap day", Date(2024, 2, 28), Date(2024, 3, 1), 3},
		{"Inverted", Date(2024, 7, 2), Date(2024, 7, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := EachDay(tt.start, tt.end)

			if len(days) != tt.want {
				t.Errorf("EachDay(%v, %v) returned %d days, want %d",
					FormatISODate(tt.start), FormatISODate(tt.end), len(days), tt.want)
			}
			if len(days) > 0 && !days[0].Equal(tt.start) {
				t.Errorf("EachDay first day = %v, want %v", days[0], tt.start)
			}
		})
	}
}

func TestDaysInRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"Single day", Date(2024, 7, 1), Date(2024, 7, 1), 1},
		{"Leap year", Date(2024, 1, 1), Date(2024, 12, 31), 366},
		{"Inverted", Date(2024, 7, 2), Date(2024, 7, 1), 0},
		{"Whole calendar", Date(1, 1, 1), Date(9999, 12, 31), 3652059},
		{"Times of day ignored", time.Date(2024, 7, 1, 23, 0, 0, 0, time.UTC), time.Date(2024, 7, 2, 1, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInRange(tt.start, tt.end); got != tt.want {
				t.Errorf("DaysInRange(%v, %v) = %d, want %d",
					FormatISODate(tt.start), FormatISODate(tt.end), got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"ISO format YYYY-MM-DD", "2025-01-15", Date(2025, 1, 15), false},
		{"Dotted format DD.MM.YYYY", "15.01.2025", Date(2025, 1, 15), false},
		{"ISO with time is truncated", "2025-01-15T10:30:00", Date(2025, 1, 15), false},
		{"Surrounding spaces", " 2024-07-05 ", Date(2024, 7, 5), false},
		{"Garbage", "yesterday", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseMonth() error = %v", err)
	}
	if !got.Equal(Date(2024, 2, 1)) {
		t.Errorf("ParseMonth(2024-02) = %v, want 2024-02-01", got)
	}

	if _, err := ParseMonth("2024/02"); err == nil {
		t.Error("ParseMonth(2024/02) expected error, got nil")
	}
}

func TestMonthDay(t *testing.T) {
	if got := MonthDay(Date(2024, 8, 15)); got != "08-15" {
		t.Errorf("MonthDay(2024-08-15) = %q, want %q", got, "08-15")
	}
}
