package view

import (
	"time"

	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/pkg/dateutil"
)

// MatrixColumn is the header of one day column
type MatrixColumn struct {
	Date        time.Time        `json:"date"`
	Weekday     string           `json:"weekday"`
	Kind        calendar.DayType `json:"-"`
	KindName    string           `json:"kind"`
	HolidayName string           `json:"holidayName,omitempty"`
	IsToday     bool             `json:"isToday"`
}

// MatrixCell is one employee on one day
type MatrixCell struct {
	Date     time.Time     `json:"date"`
	Type     vacation.Type `json:"vacationType,omitempty"`
	RecordID string        `json:"recordId,omitempty"`
}

// Absent reports whether the employee has an approved record on the day
func (c MatrixCell) Absent() bool {
	return c.RecordID != ""
}

// MatrixRow is one employee across the month
type MatrixRow struct {
	Employee directory.Employee `json:"employee"`
	IsSelf   bool               `json:"isSelf"`
	Cells    []MatrixCell       `json:"cells"`
}

// MatrixView is the employee by day grid of one month
type MatrixView struct {
	Month   time.Time      `json:"month"`
	Columns []MatrixColumn `json:"columns"`
	Rows    []MatrixRow    `json:"rows"`
}

// Matrix projects the month's days against the employees.
//
// Rows are every employee, or self and favorites in favorites mode. The
// search filters by first or last name but never hides the viewer. The
// viewer comes first, the rest are ordered by last name then first name.
func (p *Projector) Matrix(month time.Time, viewer Viewer, search string) MatrixView {
	month = dateutil.StartOfMonth(month)
	days := calendar.MonthDays(month)

	view := MatrixView{
		Month:   month,
		Columns: make([]MatrixColumn, 0, len(days)),
	}
	for _, date := range days {
		info := calendar.Classify(p.cal, date)
		view.Columns = append(view.Columns, MatrixColumn{
			Date:        date,
			Weekday:     calendar.WeekdayShort(date),
			Kind:        info.Type,
			KindName:    info.Type.String(),
			HolidayName: info.HolidayName,
			IsToday:     !viewer.Today.IsZero() && dateutil.IsSameDay(date, viewer.Today),
		})
	}

	for _, e := range p.matrixEmployees(viewer, search) {
		row := MatrixRow{
			Employee: e,
			IsSelf:   e.ID == viewer.SelfID,
			Cells:    make([]MatrixCell, 0, len(days)),
		}
		for _, date := range days {
			cell := MatrixCell{Date: date}
			if rec, ok := p.records.Covering(e.ID, date); ok {
				cell.Type = rec.Type
				cell.RecordID = rec.ID
			}
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

func (p *Projector) matrixEmployees(viewer Viewer, search string) []directory.Employee {
	var favorites map[string]struct{}
	if viewer.FavoritesMode {
		favorites = make(map[string]struct{}, len(viewer.Favorites))
		for _, id := range viewer.Favorites {
			favorites[id] = struct{}{}
		}
	}

	var out []directory.Employee
	for _, e := range p.employees.List() {
		self := e.ID == viewer.SelfID
		if favorites != nil && !self {
			if _, ok := favorites[e.ID]; !ok {
				continue
			}
		}
		if !self && !e.MatchesName(search) {
			continue
		}
		out = append(out, e)
	}

	directory.SortForViewer(out, viewer.SelfID)
	return out
}
