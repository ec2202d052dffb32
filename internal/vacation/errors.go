package vacation

import "errors"

var (
	// ErrInvalidRange is returned when a range starts after it ends
	ErrInvalidRange = errors.New("start date after end date")
	// ErrInvalidSingleDayType is returned when a single-day type (BL) spans several days
	ErrInvalidSingleDayType = errors.New("vacation type is limited to a single day")
	// ErrInvalidType is returned for an unknown vacation type
	ErrInvalidType = errors.New("unknown vacation type")
	// ErrNotFound is returned when a record id is unknown
	ErrNotFound = errors.New("vacation record not found")
	// ErrOverlap is returned when a single-record change would overlap
	// another approved record of the same employee
	ErrOverlap = errors.New("vacation overlaps an existing record")
)
