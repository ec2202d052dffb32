package balance

import (
	"errors"
	"fmt"
	"sync"

	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/vacation"
)

// ErrNoAllotment is returned when an employee has no yearly allotment configured
var ErrNoAllotment = errors.New("no vacation allotment for employee")

// RecordSource provides the records of one employee
type RecordSource interface {
	ForEmployee(employeeID string) []vacation.Record
}

// Allotment is the number of UW days an employee may take per year
type Allotment struct {
	EmployeeID  string `json:"employeeId" mapstructure:"employee_id"`
	DaysPerYear int    `json:"daysPerYear" mapstructure:"days_per_year"`
}

// Balance is an employee's UW allotment with derived usage
type Balance struct {
	EmployeeID    string `json:"employeeId"`
	DaysPerYear   int    `json:"daysPerYear"`
	DaysUsed      int    `json:"daysUsed"`
	DaysRemaining int    `json:"daysRemaining"`
}

// Calculator derives UW usage from the vacation store.
// Only approved UW records count, and only their business days.
type Calculator struct {
	source RecordSource
	cal    calendar.HolidayCalendar

	mu         sync.RWMutex
	allotments map[string]int
}

// NewCalculator creates a calculator over the given records and holidays
func NewCalculator(source RecordSource, cal calendar.HolidayCalendar, allotments []Allotment) *Calculator {
	c := &Calculator{
		source:     source,
		cal:        cal,
		allotments: make(map[string]int, len(allotments)),
	}
	for _, a := range allotments {
		c.allotments[a.EmployeeID] = a.DaysPerYear
	}
	return c
}

// SetAllotment sets or replaces the yearly allotment of an employee
func (c *Calculator) SetAllotment(employeeID string, daysPerYear int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allotments[employeeID] = daysPerYear
}

// UsedDays sums the business days of the employee's approved UW records
func (c *Calculator) UsedDays(employeeID string) int {
	used := 0
	for _, rec := range c.source.ForEmployee(employeeID) {
		if !rec.IsApproved() || rec.Type != vacation.TypeUW {
			continue
		}
		used += calendar.BusinessDaysInRange(c.cal, rec.StartDate, rec.EndDate)
	}
	return used
}

// RemainingDays is the allotment minus UsedDays. It goes negative when the
// employee is over-allotted.
func (c *Calculator) RemainingDays(employeeID string) (int, error) {
	b, err := c.Balance(employeeID)
	if err != nil {
		return 0, err
	}
	return b.DaysRemaining, nil
}

// Balance returns allotment, usage and remainder together
func (c *Calculator) Balance(employeeID string) (Balance, error) {
	c.mu.RLock()
	perYear, ok := c.allotments[employeeID]
	c.mu.RUnlock()
	if !ok {
		return Balance{}, fmt.Errorf("%w: %s", ErrNoAllotment, employeeID)
	}

	used := c.UsedDays(employeeID)
	return Balance{
		EmployeeID:    employeeID,
		DaysPerYear:   perYear,
		DaysUsed:      used,
		DaysRemaining: perYear - used,
	}, nil
}
