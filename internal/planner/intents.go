package planner

import (
	"time"

	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/pkg/dateutil"
)

// DefaultType pre-selects the type of a new request
const DefaultType = vacation.TypeUW

// Draft is the pre-filled form of a new request
type Draft struct {
	Start time.Time     `json:"startDate"`
	End   time.Time     `json:"endDate"`
	Type  vacation.Type `json:"vacationType"`
}

// DayIntent is the result of clicking a day: either the user's record
// covering it, to edit, or a draft for a new single-day request
type DayIntent struct {
	Date     time.Time        `json:"date"`
	Existing *vacation.Record `json:"existing,omitempty"`
	Draft    *Draft           `json:"draft,omitempty"`
}

// RangeIntent is the result of a drag selection. Type is pre-filled only
// when the whole range is covered by one type; Mixed warns that a submit
// will overwrite differing or partial coverage.
type RangeIntent struct {
	Range   vacation.Range `json:"range"`
	Type    vacation.Type  `json:"vacationType"`
	HasType bool           `json:"hasType"`
	Mixed   bool           `json:"mixed"`
}

// DayClick resolves a click on a calendar day
func (m *Manager) DayClick(date time.Time) (DayIntent, error) {
	date = dateutil.Day(date)
	rec, ok, err := m.CellForSelf(date)
	if err != nil {
		return DayIntent{}, err
	}
	if ok {
		return DayIntent{Date: date, Existing: &rec}, nil
	}
	return DayIntent{Date: date, Draft: &Draft{Start: date, End: date, Type: DefaultType}}, nil
}

// RangeSelect resolves a committed drag selection
func (m *Manager) RangeSelect(r vacation.Range) (RangeIntent, error) {
	r = vacation.OrderedRange(r.Start, r.End)
	summary, err := m.RangeTypeSummary(r)
	if err != nil {
		return RangeIntent{}, err
	}

	intent := RangeIntent{Range: r, Mixed: summary.Mixed, Type: DefaultType}
	if summary.HasType {
		intent.Type = summary.Type
		intent.HasType = true
	}
	return intent, nil
}

// NewRequest returns a draft anchored on today
func (m *Manager) NewRequest() Draft {
	d := m.Today()
	return Draft{Start: d, End: d, Type: DefaultType}
}
