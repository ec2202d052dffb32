package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements HolidayCalendar with fallback strategy
// Primary: FileCalendar (operator-maintained file)
// Fallback: built-in HolidayTable
type CompositeCalendar struct {
	primary  HolidayCalendar
	fallback HolidayCalendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback HolidayCalendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// PublicHoliday asks the primary calendar first, then the fallback
func (cc *CompositeCalendar) PublicHoliday(date time.Time) (string, bool) {
	if cc.primary != nil {
		if name, ok := cc.primary.PublicHoliday(date); ok {
			return name, true
		}
	}
	if cc.fallback != nil {
		return cc.fallback.PublicHoliday(date)
	}
	return "", false
}

// LoadPrimary loads the primary calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadPrimary() error {
	if fc, ok := cc.primary.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load primary calendar: %w", err)
		}
		cc.logger.Info("Primary holiday calendar loaded successfully")
	}
	return nil
}

// Holidays lists the holidays of a year from both calendars, primary
// names winning on the same date
func (cc *CompositeCalendar) Holidays(year int) []Holiday {
	merged := NewHolidayTable()
	for _, cal := range []HolidayCalendar{cc.fallback, cc.primary} {
		if lister, ok := cal.(holidayLister); ok {
			merged.Merge(lister.holidayTable())
		}
	}
	return merged.HolidaysIn(year)
}

type holidayLister interface {
	holidayTable() *HolidayTable
}

func (ht *HolidayTable) holidayTable() *HolidayTable { return ht }

func (fc *FileCalendar) holidayTable() *HolidayTable { return fc.table }
