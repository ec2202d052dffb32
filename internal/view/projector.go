package view

import (
	"time"

	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/pkg/dateutil"
)

// RecordLookup reads an employee's records
type RecordLookup interface {
	Covering(employeeID string, date time.Time) (vacation.Record, bool)
	ForEmployee(employeeID string) []vacation.Record
}

// EmployeeLister lists the employees shown as matrix rows
type EmployeeLister interface {
	List() []directory.Employee
}

// Occupancy is one employee's absence type on a date
type Occupancy struct {
	EmployeeID string        `json:"employeeId"`
	Type       vacation.Type `json:"vacationType"`
}

// Summary describes the types covering a range.
// HasType is set only when every date is covered by the same type;
// Mixed is set when types differ or only part of the range is covered.
type Summary struct {
	Type    vacation.Type `json:"vacationType,omitempty"`
	HasType bool          `json:"hasType"`
	Mixed   bool          `json:"mixed"`
}

// Viewer is the context a view is rendered for
type Viewer struct {
	SelfID        string
	Favorites     []string
	FavoritesMode bool
	Today         time.Time
}

// groupIDs returns self followed by favorites
func (v Viewer) groupIDs() []string {
	return append([]string{v.SelfID}, v.Favorites...)
}

// Projector answers read queries over the current store snapshot
type Projector struct {
	records   RecordLookup
	cal       calendar.HolidayCalendar
	employees EmployeeLister
}

// NewProjector creates a projector
func NewProjector(records RecordLookup, cal calendar.HolidayCalendar, employees EmployeeLister) *Projector {
	return &Projector{
		records:   records,
		cal:       cal,
		employees: employees,
	}
}

// CellForSelf returns the approved record of selfID covering date
func (p *Projector) CellForSelf(date time.Time, selfID string) (vacation.Record, bool) {
	return p.records.Covering(selfID, date)
}

// CellsForGroup returns one entry per id with an approved record on date,
// in input order. Repeated ids are reported once.
func (p *Projector) CellsForGroup(date time.Time, ids []string) []Occupancy {
	seen := make(map[string]struct{}, len(ids))
	var out []Occupancy
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if rec, ok := p.records.Covering(id, date); ok {
			out = append(out, Occupancy{EmployeeID: id, Type: rec.Type})
		}
	}
	return out
}

// RangeTypeSummary clips the employee's approved records to r. Approved
// records never overlap, so the clipped lengths add up to the covered days.
func (p *Projector) RangeTypeSummary(r vacation.Range, employeeID string) Summary {
	var (
		first   vacation.Type
		covered int
		differs bool
	)
	for _, rec := range p.records.ForEmployee(employeeID) {
		if !rec.IsApproved() || !rec.Range().Overlaps(r) {
			continue
		}
		if covered == 0 {
			first = rec.Type
		} else if rec.Type != first {
			differs = true
		}
		covered += dateutil.DaysInRange(laterOf(rec.StartDate, r.Start), earlierOf(rec.EndDate, r.End))
	}

	switch {
	case covered == 0:
		return Summary{}
	case differs || covered < dateutil.DaysInRange(r.Start, r.End):
		return Summary{Mixed: true}
	default:
		return Summary{Type: first, HasType: true}
	}
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
