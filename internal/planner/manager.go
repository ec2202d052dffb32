package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/vacation-planner/internal/balance"
	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/session"
	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/internal/view"
	"github.com/username/vacation-planner/pkg/dateutil"
	"go.uber.org/zap"
)

var (
	// ErrNotOwner is returned when a session changes another employee's record
	ErrNotOwner = errors.New("record belongs to another employee")
	// ErrSelfFavorite is returned when a user tries to favorite themselves
	ErrSelfFavorite = errors.New("cannot add yourself to favorites")
)

// Manager is the command and query surface used by the CLI and the HTTP
// API. Every command acts on behalf of the logged-in employee.
type Manager struct {
	store     *vacation.Store
	calendar  *calendar.CompositeCalendar
	directory *directory.Directory
	balance   *balance.Calculator
	projector *view.Projector
	sessions  *session.Manager
	clock     Clock
	logger    *zap.Logger
}

// NewManager creates a new planner manager
func NewManager(
	store *vacation.Store,
	cal *calendar.CompositeCalendar,
	dir *directory.Directory,
	calc *balance.Calculator,
	sessions *session.Manager,
	clock Clock,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		store:     store,
		calendar:  cal,
		directory: dir,
		balance:   calc,
		projector: view.NewProjector(store, cal, dir),
		sessions:  sessions,
		clock:     clock,
		logger:    logger,
	}
}

// Sessions returns the session manager
func (m *Manager) Sessions() *session.Manager {
	return m.sessions
}

// Directory returns the employee directory
func (m *Manager) Directory() *directory.Directory {
	return m.directory
}

// Today returns the clock's current date
func (m *Manager) Today() time.Time {
	return today(m.clock)
}

func (m *Manager) current() (*session.Session, error) {
	return m.sessions.Current()
}

// ownRecord loads a record and checks it belongs to the session user
func (m *Manager) ownRecord(s *session.Session, id string) (vacation.Record, error) {
	rec, err := m.store.Get(id)
	if err != nil {
		return vacation.Record{}, err
	}
	if rec.EmployeeID != s.User().ID {
		return vacation.Record{}, fmt.Errorf("%w: %s", ErrNotOwner, id)
	}
	return rec, nil
}

// SubmitRange sets the user's coverage inside r to one record of type t
func (m *Manager) SubmitRange(r vacation.Range, t vacation.Type, notes string) ([]vacation.Record, error) {
	s, err := m.current()
	if err != nil {
		return nil, err
	}
	records, err := m.store.SubmitRange(s.User().ID, r, t, notes)
	if err != nil {
		m.logger.Warn("Range submit rejected",
			zap.String("employee_id", s.User().ID),
			zap.Stringer("range", r),
			zap.Error(err))
		return nil, err
	}
	return records, nil
}

// DeleteRange clears the user's coverage inside r
func (m *Manager) DeleteRange(r vacation.Range) ([]vacation.Record, error) {
	s, err := m.current()
	if err != nil {
		return nil, err
	}
	return m.store.DeleteRange(s.User().ID, r)
}

// AddSingle adds one record for the user without touching existing ones
func (m *Manager) AddSingle(start, end time.Time, t vacation.Type, notes string) (vacation.Record, error) {
	s, err := m.current()
	if err != nil {
		return vacation.Record{}, err
	}
	return m.store.AddSingle(s.User().ID, start, end, t, notes)
}

// EditSingle replaces one of the user's records
func (m *Manager) EditSingle(id string, start, end time.Time, t vacation.Type, notes string) (vacation.Record, error) {
	s, err := m.current()
	if err != nil {
		return vacation.Record{}, err
	}
	if _, err := m.ownRecord(s, id); err != nil {
		return vacation.Record{}, err
	}
	return m.store.EditSingle(id, start, end, t, notes)
}

// DeleteSingle removes one of the user's records
func (m *Manager) DeleteSingle(id string) ([]vacation.Record, error) {
	s, err := m.current()
	if err != nil {
		return nil, err
	}
	if _, err := m.ownRecord(s, id); err != nil {
		return nil, err
	}
	return m.store.DeleteSingle(id)
}

// Records returns the user's records, or another employee's when
// employeeID is set
func (m *Manager) Records(employeeID string) ([]vacation.Record, error) {
	if employeeID == "" {
		s, err := m.current()
		if err != nil {
			return nil, err
		}
		employeeID = s.User().ID
	}
	return m.store.ForEmployee(employeeID), nil
}

// Record returns one record by id
func (m *Manager) Record(id string) (vacation.Record, error) {
	return m.store.Get(id)
}

// CellForSelf returns the user's approved record covering date
func (m *Manager) CellForSelf(date time.Time) (vacation.Record, bool, error) {
	s, err := m.current()
	if err != nil {
		return vacation.Record{}, false, err
	}
	rec, ok := m.projector.CellForSelf(date, s.User().ID)
	return rec, ok, nil
}

// CellsForGroup returns the absences of the given employees on date. With
// no ids it reports the user followed by their favorites.
func (m *Manager) CellsForGroup(date time.Time, ids []string) ([]view.Occupancy, error) {
	if len(ids) == 0 {
		s, err := m.current()
		if err != nil {
			return nil, err
		}
		ids = append([]string{s.User().ID}, s.Favorites().IDs()...)
	}
	return m.projector.CellsForGroup(date, ids), nil
}

// RangeTypeSummary describes the user's coverage of r
func (m *Manager) RangeTypeSummary(r vacation.Range) (view.Summary, error) {
	s, err := m.current()
	if err != nil {
		return view.Summary{}, err
	}
	if err := r.Validate(); err != nil {
		return view.Summary{}, err
	}
	return m.projector.RangeTypeSummary(r, s.User().ID), nil
}

// MonthGrid returns the 42 dates of the month's calendar
func (m *Manager) MonthGrid(month time.Time) []time.Time {
	return calendar.MonthGrid(month)
}

// Month projects the monthly calendar for the user
func (m *Manager) Month(month time.Time) (view.MonthView, error) {
	s, err := m.current()
	if err != nil {
		return view.MonthView{}, err
	}
	return m.projector.Month(month, s.Viewer(m.Today())), nil
}

// Matrix projects the employee by day grid for the user
func (m *Manager) Matrix(month time.Time, search string) (view.MatrixView, error) {
	s, err := m.current()
	if err != nil {
		return view.MatrixView{}, err
	}
	return m.projector.Matrix(month, s.Viewer(m.Today()), search), nil
}

// UsedDays returns the business days of the user's approved UW records
func (m *Manager) UsedDays() (int, error) {
	s, err := m.current()
	if err != nil {
		return 0, err
	}
	return m.balance.UsedDays(s.User().ID), nil
}

// RemainingDays returns the user's allotment minus UsedDays
func (m *Manager) RemainingDays() (int, error) {
	s, err := m.current()
	if err != nil {
		return 0, err
	}
	return m.balance.RemainingDays(s.User().ID)
}

// Balance returns the user's UW balance
func (m *Manager) Balance() (balance.Balance, error) {
	s, err := m.current()
	if err != nil {
		return balance.Balance{}, err
	}
	return m.balance.Balance(s.User().ID)
}

// Holidays lists the public holidays of a year
func (m *Manager) Holidays(year int) []calendar.Holiday {
	return m.calendar.Holidays(year)
}

// ToggleFavorite adds or removes a favorite of the user. The user cannot
// favorite themselves and the id must be a known employee.
func (m *Manager) ToggleFavorite(employeeID string) (bool, error) {
	s, err := m.current()
	if err != nil {
		return false, err
	}
	if _, err := m.directory.Get(employeeID); err != nil {
		return false, err
	}
	if employeeID == s.User().ID {
		return false, ErrSelfFavorite
	}

	added := s.Favorites().Toggle(employeeID)
	m.logger.Info("Favorite toggled",
		zap.String("employee_id", s.User().ID),
		zap.String("favorite_id", employeeID),
		zap.Bool("added", added))
	return added, nil
}

// Favorites returns the user's favorite employees in insertion order.
// Ids no longer in the directory are skipped.
func (m *Manager) Favorites() ([]directory.Employee, error) {
	s, err := m.current()
	if err != nil {
		return nil, err
	}
	var out []directory.Employee
	for _, id := range s.Favorites().IDs() {
		if e, err := m.directory.Get(id); err == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// ToggleFavoritesView flips the user's favorites view mode
func (m *Manager) ToggleFavoritesView() (bool, error) {
	s, err := m.current()
	if err != nil {
		return false, err
	}
	return s.ToggleFavoritesView(), nil
}

// MonthOrToday parses "YYYY-MM", defaulting to the current month when empty
func (m *Manager) MonthOrToday(month string) (time.Time, error) {
	if month == "" {
		return dateutil.StartOfMonth(m.Today()), nil
	}
	return dateutil.ParseMonth(month)
}
