package view

import (
	"time"

	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/pkg/dateutil"
)

// Day is one cell of the monthly calendar
type Day struct {
	Date           time.Time        `json:"date"`
	IsCurrentMonth bool             `json:"isCurrentMonth"`
	IsToday        bool             `json:"isToday"`
	IsWeekend      bool             `json:"isWeekend"`
	HolidayName    string           `json:"holidayName,omitempty"`
	Self           *vacation.Record `json:"self,omitempty"`
	Group          []Occupancy      `json:"group,omitempty"`
}

// IsHoliday reports whether the day is a public holiday
func (d Day) IsHoliday() bool {
	return d.HolidayName != ""
}

// MonthView is the 6-week calendar of one month
type MonthView struct {
	Month   time.Time `json:"month"`
	Headers []string  `json:"headers"`
	Days    []Day     `json:"days"`
}

// Month projects the calendar grid of month for the viewer. The group
// overlay (self, then favorites) is filled only in favorites mode.
func (p *Projector) Month(month time.Time, viewer Viewer) MonthView {
	month = dateutil.StartOfMonth(month)
	grid := calendar.MonthGrid(month)

	view := MonthView{
		Month:   month,
		Headers: calendar.WeekdayHeaders(),
		Days:    make([]Day, 0, len(grid)),
	}

	var group []string
	if viewer.FavoritesMode {
		group = viewer.groupIDs()
	}

	for _, date := range grid {
		info := calendar.Classify(p.cal, date)
		day := Day{
			Date:           date,
			IsCurrentMonth: dateutil.IsSameMonth(date, month),
			IsToday:        !viewer.Today.IsZero() && dateutil.IsSameDay(date, viewer.Today),
			IsWeekend:      calendar.IsWeekend(date),
			HolidayName:    info.HolidayName,
		}
		if rec, ok := p.CellForSelf(date, viewer.SelfID); ok {
			day.Self = &rec
		}
		if group != nil {
			day.Group = p.CellsForGroup(date, group)
		}
		view.Days = append(view.Days, day)
	}

	return view
}
