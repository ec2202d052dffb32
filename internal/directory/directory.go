package directory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownEmployee is returned for an id missing from the directory
var ErrUnknownEmployee = errors.New("unknown employee")

// Employee is read-only reference data about a person
type Employee struct {
	ID        string `json:"id" mapstructure:"id"`
	FirstName string `json:"firstName" mapstructure:"first_name"`
	LastName  string `json:"lastName" mapstructure:"last_name"`
	Email     string `json:"email" mapstructure:"email"`
	Team      string `json:"team" mapstructure:"team"`
	Role      string `json:"role" mapstructure:"role"`
}

// FullName returns "First Last"
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// MatchesName reports whether the query is a case-insensitive substring of
// the first or last name. An empty query matches everyone.
func (e Employee) MatchesName(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.FirstName), q) ||
		strings.Contains(strings.ToLower(e.LastName), q)
}

// Directory is an immutable list of employees
type Directory struct {
	employees []Employee
	byID      map[string]int
}

// New builds a directory. Employees keep their given order; a duplicate id
// is an error.
func New(employees []Employee) (*Directory, error) {
	d := &Directory{
		employees: make([]Employee, 0, len(employees)),
		byID:      make(map[string]int, len(employees)),
	}
	for _, e := range employees {
		if e.ID == "" {
			return nil, fmt.Errorf("employee %q has no id", e.FullName())
		}
		if _, dup := d.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate employee id %q", e.ID)
		}
		d.byID[e.ID] = len(d.employees)
		d.employees = append(d.employees, e)
	}
	return d, nil
}

// Get returns one employee
func (d *Directory) Get(id string) (Employee, error) {
	i, ok := d.byID[id]
	if !ok {
		return Employee{}, fmt.Errorf("%w: %s", ErrUnknownEmployee, id)
	}
	return d.employees[i], nil
}

// Contains reports whether id is a known employee
func (d *Directory) Contains(id string) bool {
	_, ok := d.byID[id]
	return ok
}

// List returns a copy of all employees in directory order
func (d *Directory) List() []Employee {
	out := make([]Employee, len(d.employees))
	copy(out, d.employees)
	return out
}

// Len returns the number of employees
func (d *Directory) Len() int {
	return len(d.employees)
}

// SortForViewer orders employees with the viewer first, then by last name
// and first name
func SortForViewer(employees []Employee, viewerID string) {
	sort.SliceStable(employees, func(i, j int) bool {
		a, b := employees[i], employees[j]
		if a.ID == viewerID || b.ID == viewerID {
			return a.ID == viewerID && b.ID != viewerID
		}
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.FirstName < b.FirstName
	})
}
