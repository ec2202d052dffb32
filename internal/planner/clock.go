package planner

import (
	"time"

	"github.com/username/vacation-planner/pkg/dateutil"
)

// Clock supplies the current date
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same date
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

func today(c Clock) time.Time {
	return dateutil.Day(c.Now())
}
