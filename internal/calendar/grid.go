package calendar

import (
	"time"

	"github.com/username/vacation-planner/pkg/dateutil"
)

// GridDays is the fixed number of cells in a month grid (6 weeks).
// Every month gets the same height, whatever the number of weeks it spans.
const GridDays = 42

// MonthGrid returns the 42 dates shown for the month of monthDate,
// starting on the Monday on or before the 1st.
func MonthGrid(monthDate time.Time) []time.Time {
	first := dateutil.StartOfWeek(dateutil.StartOfMonth(monthDate))

	grid := make([]time.Time, GridDays)
	for i := range grid {
		grid[i] = first.AddDate(0, 0, i)
	}
	return grid
}

// MonthDays returns every day of the month of monthDate
func MonthDays(monthDate time.Time) []time.Time {
	return dateutil.EachDay(dateutil.StartOfMonth(monthDate), dateutil.EndOfMonth(monthDate))
}

var weekdayShortPL = [7]string{"Pn", "Wt", "Śr", "Cz", "Pt", "So", "Nd"}

// WeekdayShort returns the short Polish day name, Monday first
func WeekdayShort(date time.Time) string {
	return weekdayShortPL[(int(date.Weekday())+6)%7]
}

// WeekdayHeaders returns the column headers of the month grid
func WeekdayHeaders() []string {
	out := make([]string, len(weekdayShortPL))
	copy(out, weekdayShortPL[:])
	return out
}
