package view

import (
	"time"

	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/pkg/dateutil"
)

// SelectionState is either Idle or Dragging
type SelectionState interface {
	selectionState()
}

// Idle means no drag in progress
type Idle struct{}

// Dragging holds the pressed day and the last hovered day
type Dragging struct {
	Anchor time.Time
	Hover  time.Time
}

func (Idle) selectionState()     {}
func (Dragging) selectionState() {}

// Selection is the drag-to-select gesture on a month grid.
// Only days of the displayed month can start or extend a drag.
type Selection struct {
	month time.Time
	state SelectionState
}

// NewSelection creates an idle selection for the displayed month
func NewSelection(month time.Time) *Selection {
	return &Selection{month: dateutil.StartOfMonth(month), state: Idle{}}
}

// State returns the current state
func (s *Selection) State() SelectionState {
	return s.state
}

// SetMonth changes the displayed month and drops any drag in progress
func (s *Selection) SetMonth(month time.Time) {
	s.month = dateutil.StartOfMonth(month)
	s.state = Idle{}
}

// Press starts a drag on day. Days outside the month are ignored.
func (s *Selection) Press(day time.Time) bool {
	if !dateutil.IsSameMonth(day, s.month) {
		return false
	}
	day = dateutil.Day(day)
	s.state = Dragging{Anchor: day, Hover: day}
	return true
}

// Hover moves the drag end while dragging over a day of the month
func (s *Selection) Hover(day time.Time) bool {
	drag, ok := s.state.(Dragging)
	if !ok || !dateutil.IsSameMonth(day, s.month) {
		return false
	}
	drag.Hover = dateutil.Day(day)
	s.state = drag
	return true
}

// Release ends the drag, wherever the pointer is, and returns the ordered
// range between the anchor and the last hovered day. A press and release
// on the same day commits a single-day range.
func (s *Selection) Release() (vacation.Range, bool) {
	drag, ok := s.state.(Dragging)
	s.state = Idle{}
	if !ok {
		return vacation.Range{}, false
	}
	return vacation.OrderedRange(drag.Anchor, drag.Hover), true
}

// Highlighted reports whether day lies in the range being dragged
func (s *Selection) Highlighted(day time.Time) bool {
	drag, ok := s.state.(Dragging)
	if !ok || !dateutil.IsSameMonth(day, s.month) {
		return false
	}
	r := vacation.OrderedRange(drag.Anchor, drag.Hover)
	day = dateutil.Day(day)
	return !day.Before(r.Start) && !day.After(r.End)
}
