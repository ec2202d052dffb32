package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the layout used for calendar dates on the wire and in files
const ISODate = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Day returns the calendar date of t as UTC midnight.
// All planner dates are calendar dates, so every value entering the core
// goes through Day before it is compared or stored.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns the 1st of the month of the given date
func StartOfMonth(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), 1)
}

// EndOfMonth returns the last day of the month of the given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	daysFromMonday := weekday - 1
	return Day(date).AddDate(0, 0, -daysFromMonday)
}

// AddDays shifts a calendar date by n days
func AddDays(date time.Time, n int) time.Time {
	return Day(date).AddDate(0, 0, n)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// IsSameMonth returns true if two dates are in the same month of the same year
func IsSameMonth(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month()
}

// EachDay returns every date in [start, end] inclusive.
// An inverted interval yields nil.
func EachDay(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return nil
	}
	days := make([]time.Time, 0, DaysInRange(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DaysInRange counts the dates in [start, end] inclusive without
// materializing them. An inverted interval yields 0.
func DaysInRange(start, end time.Time) int {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return 0
	}
	return int((end.Unix()-start.Unix())/secondsPerDay) + 1
}

// MonthDay formats the "MM-DD" key used by holiday tables
func MonthDay(date time.Time) string {
	return date.Format("01-02")
}

// FormatISODate formats a calendar date as YYYY-MM-DD
func FormatISODate(date time.Time) string {
	return date.Format(ISODate)
}

// ParseDate parses date string in various formats and returns a calendar date
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	formats := []string{
		ISODate,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return Day(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// ParseMonth parses "YYYY-MM" into the 1st of that month
func ParseMonth(monthStr string) (time.Time, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(monthStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized month %q: %w", monthStr, err)
	}
	return StartOfMonth(t), nil
}

// Today returns today's calendar date
func Today() time.Time {
	return Day(time.Now())
}
