package vacation

import (
	"sort"

	"github.com/username/vacation-planner/pkg/dateutil"
)

// Reconcile clears the approved coverage of employeeID inside r.
//
// Every approved record of the employee is kept when disjoint from r,
// dropped when contained in r, split around r when it envelops r, and
// truncated to the part outside r when it crosses one boundary. Pieces that
// survive a split or truncation get fresh ids from newID. Records of other
// employees and non-approved records pass through untouched.
//
// The input slice is not modified. r must be valid.
func Reconcile(existing []Record, employeeID string, r Range, newID func() string) []Record {
	out := make([]Record, 0, len(existing)+1)
	beforeStart := dateutil.AddDays(r.Start, -1)
	afterEnd := dateutil.AddDays(r.End, 1)

	for _, v := range existing {
		if v.EmployeeID != employeeID || !v.IsApproved() {
			out = append(out, v)
			continue
		}

		switch {
		// Disjoint
		case v.EndDate.Before(r.Start) || v.StartDate.After(r.End):
			out = append(out, v)

		// Fully contained: superseded
		case !v.StartDate.Before(r.Start) && !v.EndDate.After(r.End):

		// Envelops the range: split in two
		case v.StartDate.Before(r.Start) && v.EndDate.After(r.End):
			prefix := v
			prefix.ID = newID()
			prefix.EndDate = beforeStart
			suffix := v
			suffix.ID = newID()
			suffix.StartDate = afterEnd
			out = append(out, prefix, suffix)

		// Overlaps the start only: keep the prefix
		case v.StartDate.Before(r.Start):
			prefix := v
			prefix.ID = newID()
			prefix.EndDate = beforeStart
			out = append(out, prefix)

		// Overlaps the end only: keep the suffix
		default:
			suffix := v
			suffix.ID = newID()
			suffix.StartDate = afterEnd
			out = append(out, suffix)
		}
	}

	return out
}

// sortRecords orders records by start date, then end date, then id
func sortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		if !a.EndDate.Equal(b.EndDate) {
			return a.EndDate.Before(b.EndDate)
		}
		return a.ID < b.ID
	})
}

// FindOverlaps returns the pairs of approved records of the same employee
// whose intervals intersect
func FindOverlaps(records []Record) [][2]Record {
	approved := make([]Record, 0, len(records))
	for _, r := range records {
		if r.IsApproved() {
			approved = append(approved, r)
		}
	}
	sortByEmployee(approved)

	var pairs [][2]Record
	for i := 0; i < len(approved); i++ {
		for j := i + 1; j < len(approved); j++ {
			if approved[j].EmployeeID != approved[i].EmployeeID || approved[j].StartDate.After(approved[i].EndDate) {
				break
			}
			pairs = append(pairs, [2]Record{approved[i], approved[j]})
		}
	}
	return pairs
}

// sortByEmployee orders records by employee, then as sortRecords does
func sortByEmployee(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		if !a.EndDate.Equal(b.EndDate) {
			return a.EndDate.Before(b.EndDate)
		}
		return a.ID < b.ID
	})
}
