package vacation

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/username/vacation-planner/pkg/dateutil"
	"go.uber.org/zap"
)

// Store keeps the vacation records of every employee in memory, each
// employee's records ordered by start date.
//
// Every command computes the employee's new record set first and swaps it
// in under the write lock, so a failed validation never leaves a partially
// reconciled set behind and readers never observe one.
type Store struct {
	mu         sync.RWMutex
	byEmployee map[string][]Record
	owners     map[string]string // record id -> employee id
	newID      func() string
	logger     *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the uuid-based id generator
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// NewStore creates an empty store
func NewStore(logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		byEmployee: make(map[string][]Record),
		owners:     make(map[string]string),
		newID:      uuid.NewString,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed loads existing records, e.g. demo data. Records without id get one,
// records without status are approved. The whole batch is rejected if any
// record is invalid or would break the non-overlap invariant.
func (s *Store) Seed(records ...Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[string][]Record)
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		rec.StartDate = dateutil.Day(rec.StartDate)
		rec.EndDate = dateutil.Day(rec.EndDate)
		if rec.ID == "" {
			rec.ID = s.newID()
		}
		if rec.Status == "" {
			rec.Status = StatusApproved
		}
		if err := validateEntry(rec.Range(), rec.Type); err != nil {
			return fmt.Errorf("seed record %s: %w", rec.ID, err)
		}
		_, exists := s.owners[rec.ID]
		_, repeated := seen[rec.ID]
		if exists || repeated {
			return fmt.Errorf("seed record %s: duplicate id", rec.ID)
		}
		seen[rec.ID] = struct{}{}
		if staged[rec.EmployeeID] == nil {
			staged[rec.EmployeeID] = s.copyOf(rec.EmployeeID)
		}
		staged[rec.EmployeeID] = append(staged[rec.EmployeeID], rec)
	}

	for _, set := range staged {
		if pairs := FindOverlaps(set); len(pairs) > 0 {
			return fmt.Errorf("seed records %s and %s: %w", pairs[0][0].ID, pairs[0][1].ID, ErrOverlap)
		}
	}
	for employeeID, set := range staged {
		s.replace(employeeID, set)
	}

	s.logger.Info("Vacation records seeded", zap.Int("count", len(records)))
	return nil
}

// SubmitRange sets the employee's coverage inside r to a single new
// approved record of type t, splitting or truncating existing records that
// cross the range boundaries. It returns the employee's updated records.
func (s *Store) SubmitRange(employeeID string, r Range, t Type, notes string) ([]Record, error) {
	r = NewRange(r.Start, r.End)
	if err := validateEntry(r, t); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reconcile(s.byEmployee[employeeID], employeeID, r, s.newID)
	created := Record{
		ID:         s.newID(),
		EmployeeID: employeeID,
		Type:       t,
		StartDate:  r.Start,
		EndDate:    r.End,
		Status:     StatusApproved,
		Notes:      notes,
	}
	next = append(next, created)
	s.replace(employeeID, next)

	s.logger.Info("Vacation range submitted",
		zap.String("employee_id", employeeID),
		zap.Stringer("range", r),
		zap.String("type", string(t)),
		zap.String("record_id", created.ID))

	return s.copyOf(employeeID), nil
}

// DeleteRange clears the employee's approved coverage inside r
func (s *Store) DeleteRange(employeeID string, r Range) ([]Record, error) {
	r = NewRange(r.Start, r.End)
	if err := r.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reconcile(s.byEmployee[employeeID], employeeID, r, s.newID)
	s.replace(employeeID, next)

	s.logger.Info("Vacation range deleted",
		zap.String("employee_id", employeeID),
		zap.Stringer("range", r))

	return s.copyOf(employeeID), nil
}

// AddSingle appends one approved record without reconciling existing ones.
// It fails with ErrOverlap if the new interval intersects another approved
// record of the employee.
func (s *Store) AddSingle(employeeID string, start, end time.Time, t Type, notes string) (Record, error) {
	r := NewRange(start, end)
	if err := validateEntry(r, t); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if conflict, ok := s.overlapping(employeeID, r, ""); ok {
		return Record{}, fmt.Errorf("%w: %s (%s)", ErrOverlap, conflict.ID, conflict.Range())
	}

	rec := Record{
		ID:         s.newID(),
		EmployeeID: employeeID,
		Type:       t,
		StartDate:  r.Start,
		EndDate:    r.End,
		Status:     StatusApproved,
		Notes:      notes,
	}
	s.replace(employeeID, append(s.copyOf(employeeID), rec))

	s.logger.Info("Vacation added",
		zap.String("employee_id", employeeID),
		zap.Stringer("range", r),
		zap.String("type", string(t)),
		zap.String("record_id", rec.ID))

	return rec, nil
}

// EditSingle replaces dates, type and notes of one record, keeping its id,
// employee and status. An approved record may not be moved or widened onto
// another approved record of the same employee (ErrOverlap).
func (s *Store) EditSingle(id string, start, end time.Time, t Type, notes string) (Record, error) {
	r := NewRange(start, end)
	if err := validateEntry(r, t); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employeeID, ok := s.owners[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	next := s.copyOf(employeeID)
	idx := indexOf(next, id)
	edited := next[idx]
	edited.StartDate = r.Start
	edited.EndDate = r.End
	edited.Type = t
	edited.Notes = notes

	if edited.IsApproved() {
		if conflict, ok := s.overlapping(employeeID, r, id); ok {
			return Record{}, fmt.Errorf("%w: %s (%s)", ErrOverlap, conflict.ID, conflict.Range())
		}
	}

	next[idx] = edited
	s.replace(employeeID, next)

	s.logger.Info("Vacation edited",
		zap.String("employee_id", employeeID),
		zap.String("record_id", id),
		zap.Stringer("range", r),
		zap.String("type", string(t)))

	return edited, nil
}

// DeleteSingle removes exactly one record and returns the owner's
// remaining records
func (s *Store) DeleteSingle(id string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employeeID, ok := s.owners[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	current := s.byEmployee[employeeID]
	next := make([]Record, 0, len(current))
	for _, rec := range current {
		if rec.ID != id {
			next = append(next, rec)
		}
	}
	s.replace(employeeID, next)

	s.logger.Info("Vacation deleted",
		zap.String("employee_id", employeeID),
		zap.String("record_id", id))

	return s.copyOf(employeeID), nil
}

// Get returns one record by id
func (s *Store) Get(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employeeID, ok := s.owners[id]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.byEmployee[employeeID][indexOf(s.byEmployee[employeeID], id)], nil
}

// ForEmployee returns the employee's records ordered by start date
func (s *Store) ForEmployee(employeeID string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyOf(employeeID)
}

// All returns every record, grouped by employee id and ordered by start
// date within each employee
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.byEmployee))
	for id := range s.byEmployee {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []Record
	for _, id := range ids {
		out = append(out, s.byEmployee[id]...)
	}
	return out
}

// Covering returns the first approved record of the employee that spans
// date. Records are scanned in start order.
func (s *Store) Covering(employeeID string, date time.Time) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	date = dateutil.Day(date)
	for _, rec := range s.byEmployee[employeeID] {
		if rec.StartDate.After(date) {
			break
		}
		if rec.IsApproved() && rec.Covers(date) {
			return rec, true
		}
	}
	return Record{}, false
}

// overlapping finds an approved record of the employee intersecting r,
// ignoring the record skipID. Callers hold the lock.
func (s *Store) overlapping(employeeID string, r Range, skipID string) (Record, bool) {
	for _, rec := range s.byEmployee[employeeID] {
		if rec.ID == skipID || !rec.IsApproved() {
			continue
		}
		if rec.Range().Overlaps(r) {
			return rec, true
		}
	}
	return Record{}, false
}

// replace swaps in the employee's new record set. Callers hold the lock.
func (s *Store) replace(employeeID string, next []Record) {
	for _, rec := range s.byEmployee[employeeID] {
		delete(s.owners, rec.ID)
	}
	sortRecords(next)
	for _, rec := range next {
		s.owners[rec.ID] = employeeID
	}
	if len(next) == 0 {
		delete(s.byEmployee, employeeID)
		return
	}
	s.byEmployee[employeeID] = next
}

func (s *Store) copyOf(employeeID string) []Record {
	current := s.byEmployee[employeeID]
	out := make([]Record, len(current))
	copy(out, current)
	return out
}

func indexOf(records []Record, id string) int {
	for i, rec := range records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}
