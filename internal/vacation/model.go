package vacation

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/vacation-planner/pkg/dateutil"
)

// Type is the kind of absence
type Type string

const (
	TypeUW  Type = "UW"  // Urlop wypoczynkowy
	TypeCH  Type = "CH"  // Chorobowe
	TypeHO  Type = "HO"  // Home office
	TypeDEL Type = "Del" // Delegacja
	TypeFW  Type = "FW"  // Workation
	TypeBL  Type = "BL"  // Dzień z bliskimi
	TypeIN  Type = "IN"  // Inne
)

// Types lists every vacation type in display order
var Types = []Type{TypeUW, TypeCH, TypeHO, TypeDEL, TypeFW, TypeBL, TypeIN}

var typeLabels = map[Type]string{
	TypeUW:  "Urlop Wypoczynkowy",
	TypeCH:  "Chorobowe",
	TypeHO:  "Home Office",
	TypeDEL: "Delegacja",
	TypeFW:  "Workation",
	TypeBL:  "Dzień z Bliskimi",
	TypeIN:  "Inne",
}

// Label returns the display label of the type
func (t Type) Label() string {
	return typeLabels[t]
}

// IsValid reports whether t is one of the known types
func (t Type) IsValid() bool {
	_, ok := typeLabels[t]
	return ok
}

// SingleDayOnly reports whether records of this type must span one day
func (t Type) SingleDayOnly() bool {
	return t == TypeBL
}

// ParseType accepts the wire value case-insensitively ("del" and "DEL" both
// map to TypeDEL)
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for _, t := range Types {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

// Status is the approval state of a record
type Status string

const (
	StatusRequested Status = "REQUESTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
)

// Record is one contiguous, single-type absence of an employee
type Record struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Type       Type      `json:"vacationType"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Status     Status    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
}

// IsApproved reports whether the record takes part in reconciliation
func (r Record) IsApproved() bool {
	return r.Status == StatusApproved
}

// Covers reports whether the record spans the given date
func (r Record) Covers(date time.Time) bool {
	date = dateutil.Day(date)
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}

// Range returns the record's interval
func (r Record) Range() Range {
	return Range{Start: r.StartDate, End: r.EndDate}
}

// Range is an inclusive interval of calendar dates
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewRange builds a range of calendar dates. It does not validate order.
func NewRange(start, end time.Time) Range {
	return Range{Start: dateutil.Day(start), End: dateutil.Day(end)}
}

// OrderedRange builds a range from two dates in any order
func OrderedRange(a, b time.Time) Range {
	a, b = dateutil.Day(a), dateutil.Day(b)
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Validate rejects inverted ranges
func (r Range) Validate() error {
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: %s after %s", ErrInvalidRange,
			dateutil.FormatISODate(r.Start), dateutil.FormatISODate(r.End))
	}
	return nil
}

// Overlaps reports whether two ranges share at least one date
func (r Range) Overlaps(other Range) bool {
	return !r.End.Before(other.Start) && !other.End.Before(r.Start)
}

// Days returns the dates of the range
func (r Range) Days() []time.Time {
	return dateutil.EachDay(r.Start, r.End)
}

// IsSingleDay reports whether the range spans exactly one date
func (r Range) IsSingleDay() bool {
	return r.Start.Equal(r.End)
}

func (r Range) String() string {
	return dateutil.FormatISODate(r.Start) + ".." + dateutil.FormatISODate(r.End)
}

// validateEntry checks everything a new or edited record must satisfy
func validateEntry(r Range, t Type) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t)
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if t.SingleDayOnly() && !r.IsSingleDay() {
		return fmt.Errorf("%w: %s spans %s", ErrInvalidSingleDayType, t, r)
	}
	return nil
}
