package calendar

import (
	"time"

	"github.com/username/vacation-planner/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

// String returns a lowercase name of the day type
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date        time.Time
	Type        DayType
	HolidayName string
}

// IsBusinessDay reports whether the day is neither weekend nor holiday
func (d DayInfo) IsBusinessDay() bool {
	return d.Type == DayTypeWorkday
}

// HolidayCalendar looks up public holidays
type HolidayCalendar interface {
	// PublicHoliday returns the holiday's display name for the date.
	// A year without data is not an error: it simply has no holidays.
	PublicHoliday(date time.Time) (string, bool)
}

// IsWeekend reports whether the date falls on Saturday or Sunday
func IsWeekend(date time.Time) bool {
	return dateutil.IsWeekend(date)
}

// Classify returns the day info for a date. A holiday on a weekend is
// reported as a holiday.
func Classify(cal HolidayCalendar, date time.Time) DayInfo {
	date = dateutil.Day(date)
	info := DayInfo{Date: date, Type: DayTypeWorkday}

	if name, ok := holiday(cal, date); ok {
		info.Type = DayTypeHoliday
		info.HolidayName = name
		return info
	}
	if IsWeekend(date) {
		info.Type = DayTypeWeekend
	}
	return info
}

// IsBusinessDay reports whether date is neither a weekend nor a public holiday
func IsBusinessDay(cal HolidayCalendar, date time.Time) bool {
	if IsWeekend(date) {
		return false
	}
	_, ok := holiday(cal, date)
	return !ok
}

// BusinessDaysInRange counts business days in [start, end] inclusive.
// start after end yields 0.
func BusinessDaysInRange(cal HolidayCalendar, start, end time.Time) int {
	count := 0
	start, end = dateutil.Day(start), dateutil.Day(end)
	for day := start; !day.After(end); day = dateutil.AddDays(day, 1) {
		if IsBusinessDay(cal, day) {
			count++
		}
	}
	return count
}

func holiday(cal HolidayCalendar, date time.Time) (string, bool) {
	if cal == nil {
		return "", false
	}
	return cal.PublicHoliday(date)
}
