package calendar

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/username/vacation-planner/pkg/dateutil"
)

// HolidayTable implements HolidayCalendar with an in-memory table keyed by
// year and "MM-DD"
type HolidayTable struct {
	mu    sync.RWMutex
	years map[int]map[string]string
}

// Holiday is a single named public holiday
type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// NewHolidayTable creates an empty table
func NewHolidayTable() *HolidayTable {
	return &HolidayTable{
		years: make(map[int]map[string]string),
	}
}

// PublicHoliday returns the holiday name for the given date
func (ht *HolidayTable) PublicHoliday(date time.Time) (string, bool) {
	ht.mu.RLock()
	defer ht.mu.RUnlock()

	days, ok := ht.years[date.Year()]
	if !ok {
		return "", false
	}
	name, ok := days[dateutil.MonthDay(date)]
	return name, ok
}

// Add registers one holiday, replacing any name already set for that date
func (ht *HolidayTable) Add(date time.Time, name string) {
	ht.mu.Lock()
	defer ht.mu.Unlock()

	days, ok := ht.years[date.Year()]
	if !ok {
		days = make(map[string]string)
		ht.years[date.Year()] = days
	}
	days[dateutil.MonthDay(date)] = name
}

// SetYear replaces the whole table of one year. Keys are "MM-DD".
func (ht *HolidayTable) SetYear(year int, days map[string]string) {
	copied := make(map[string]string, len(days))
	for k, v := range days {
		copied[k] = v
	}

	ht.mu.Lock()
	ht.years[year] = copied
	ht.mu.Unlock()
}

// Years returns the years with data, ascending
func (ht *HolidayTable) Years() []int {
	ht.mu.RLock()
	defer ht.mu.RUnlock()

	years := make([]int, 0, len(ht.years))
	for y := range ht.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// HolidaysIn returns the holidays of a year ordered by date.
// Keys that do not form a valid date in that year are skipped.
func (ht *HolidayTable) HolidaysIn(year int) []Holiday {
	ht.mu.RLock()
	defer ht.mu.RUnlock()

	var out []Holiday
	for md, name := range ht.years[year] {
		date, err := time.Parse(dateutil.ISODate, fmt.Sprintf("%04d-%s", year, md))
		if err != nil {
			continue
		}
		out = append(out, Holiday{Date: date, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Merge copies every entry of other into the table
func (ht *HolidayTable) Merge(other *HolidayTable) {
	for _, year := range other.Years() {
		for _, h := range other.HolidaysIn(year) {
			ht.Add(h.Date, h.Name)
		}
	}
}
