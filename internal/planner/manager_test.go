package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/username/vacation-planner/internal/balance"
	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/kvstore"
	"github.com/username/vacation-planner/internal/session"
	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/pkg/dateutil"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, now time.Time) *Manager {
	t.Helper()
	logger := zap.NewNop()

	store := vacation.NewStore(logger)
	if err := store.Seed(vacation.DemoRecords()...); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	dir, err := directory.New(directory.MockEmployees())
	if err != nil {
		t.Fatalf("directory.New() error = %v", err)
	}
	cal := calendar.NewCompositeCalendar(nil, calendar.PolishHolidays(), logger)
	calc := balance.NewCalculator(store, cal, balance.DefaultAllotments())
	sessions := session.NewManager(directory.NewMockIdentity(dir, directory.DefaultUserID, logger), kvstore.NewMemory(), logger)

	return NewManager(store, cal, dir, calc, sessions, FixedClock(now), logger)
}

func TestManager_RequiresSession(t *testing.T) {
	m := newTestManager(t, dateutil.Date(2024, 7, 1))

	if _, err := m.SubmitRange(vacation.NewRange(dateutil.Date(2024, 7, 1), dateutil.Date(2024, 7, 2)), vacation.TypeUW, ""); !errors.Is(err, session.ErrNotLoggedIn) {
		t.Errorf("SubmitRange() without session error = %v, want ErrNotLoggedIn", err)
	}
	if _, err := m.Balance(); !errors.Is(err, session.ErrNotLoggedIn) {
		t.Errorf("Balance() without session error = %v, want ErrNotLoggedIn", err)
	}
}

func TestManager_DemoBalance(t *testing.T) {
	m := newTestManager(t, dateutil.Date(2024, 7, 1))
	if _, err := m.Sessions().Login("1"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	b, err := m.Balance()
	if err != nil {
		t.Fatalf("Balance() error = %v", err)
	}
	// v1 is Mon 22 to Fri 26 July 2024
	if b.DaysUsed != 5 || b.DaysRemaining != 21 {
		t.Errorf("Balance() = %+v, want 5 used, 21 remaining", b)
	}

	used, _ := m.UsedDays()
	remaining, _ := m.RemainingDays()
	if used != 5 || remaining != 21 {
		t.Errorf("UsedDays(), RemainingDays() = %d, %d, want 5, 21", used, remaining)
	}
}

func TestManager_DayClick(t *testing.T) {
	m := newTestManager(t, dateutil.Date(2024, 7, 1))
	m.Sessions().Login("1")

	intent, err := m.DayClick(dateutil.Date(2024, 7, 23))
	if err != nil {
		t.Fatalf("DayClick() error = %v", err)
	}
	if intent.Existing == nil || intent.Existing.ID != "v1" || intent.Draft != nil {
		t.Errorf("DayClick(2024-07-23) = %+v, want existing v1", intent)
	}

	intent, _ = m.DayClick(dateutil.Date(2024, 7, 2))
	if intent.Draft == nil || intent.Existing != nil {
		t.Fatalf("DayClick(2024-07-02) = %+v, want draft", intent)
	}
	if intent.Draft.Type != vacation.TypeUW || !intent.Draft.Start.Equal(dateutil.Date(2024, 7, 2)) {
		t.Errorf("draft = %+v", intent.Draft)
	}
}

func TestManager_RangeSelect(t *testing.T) {
	m := newTestManager(t, dateutil.Date(2024, 7, 1))
	m.Sessions().Login("1")

	tests := []struct {
		name        string
		a, b        time.Time
		wantType    vacation.Type
		wantHasType bool
		wantMixed   bool
	}{
		{"Inside v1", dateutil.Date(2024, 7, 23), dateutil.Date(2024, 7, 24), vacation.TypeUW, true, false},
		{"Reversed drag, partly covered", dateutil.Date(2024, 7, 28), dateutil.Date(2024, 7, 25), vacation.TypeUW, false, true},
		{"Free days", dateutil.Date(2024, 7, 1), dateutil.Date(2024, 7, 5), vacation.TypeUW, false, false},
		{"Single HO day", dateutil.Date(2024, 7, 15), dateutil.Date(2024, 7, 15), vacation.TypeHO, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.RangeSelect(vacation.Range{Start: tt.a, End: tt.b})
			if err != nil {
				t.Fatalf("RangeSelect() error = %v", err)
			}
			if got.Type != tt.wantType || got.HasType != tt.wantHasType || got.Mixed != tt.wantMixed {
				t.Errorf("RangeSelect() = %+v, want type %s hasType %v mixed %v", got, tt.wantType, tt.wantHasType, tt.wantMixed)
			}
			if got.Range.Start.After(got.Range.End) {
				t.Errorf("RangeSelect() range not ordered: %v", got.Range)
			}
		})
	}
}

func TestManager_NewRequestUsesClock(t *testing.T) {
	now := time.Date(2024, 9, 3, 17, 45, 0, 0, time.UTC)
	m := newTestManager(t, now)

	d := m.NewRequest()
	if !d.Start.Equal(dateutil.Date(2024, 9, 3)) || !d.End.Equal(d.Start) || d.Type != DefaultType {
		t.Errorf("NewRequest() = %+v", d)
	}

	month, err := m.MonthOrToday("")
	if err != nil || !month.Equal(dateutil.Date(2024, 9, 1)) {
		t.Errorf("MonthOrToday(\"\") = %v, %v", month, err)
	}
}

func TestManager_OwnershipChecks(t *testing.T) {
	m := newTestManager(t, dateutil.Date(2024, 7, 1))
	m.Sessions().Login("1")

	// v3 belongs to employee 2
	if _, err := m.DeleteSingle("v3"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("DeleteSingle(v3) error = %v, want ErrNotOwner", err)
	}
	if _, err := m.EditSingle("v3", dateutil.Date(2024, 7, 18), dateutil.Date(2024, 7, 18), vacation.TypeCH, ""); !errors.Is(err, ErrNotOwner) {
		t.Errorf("EditSingle(v3) error = %v, want ErrNotOwner", err)
	}
	if _, err := m.DeleteSingle("missing"); !errors.Is(err, vacation.ErrNotFound) {
		t.Errorf("DeleteSingle(missing) error = %v, want ErrNotFound", err)
	}

	records, err := m.DeleteSingle("v2")
	if err != nil {
		t.Fatalf("DeleteSingle(v2) error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("DeleteSingle(v2) left %d records, want 2", len(records))
	}
}

func TestManager_Favorites(t *testing.T) {
	m := newTestManager(t, dateutil.Date(2024, 8, 1))
	m.Sessions().Login("1")

	if _, err := m.ToggleFavorite("1"); !errors.Is(err, ErrSelfFavorite) {
		t.Errorf("ToggleFavorite(self) error = %v, want ErrSelfFavorite", err)
	}
	if _, err := m.ToggleFavorite("99"); !errors.Is(err, directory.ErrUnknownEmployee) {
		t.Errorf("ToggleFavorite(99) error = %v, want ErrUnknownEmployee", err)
	}
	if added, err := m.ToggleFavorite("4"); err != nil || !added {
		t.Fatalf("ToggleFavorite(4) = %v, %v", added, err)
	}

	favs, _ := m.Favorites()
	if len(favs) != 1 || favs[0].ID != "4" {
		t.Errorf("Favorites() = %v", favs)
	}

	cells, err := m.CellsForGroup(dateutil.Date(2024, 8, 12), nil)
	if err != nil || len(cells) != 1 || cells[0].EmployeeID != "4" {
		t.Errorf("CellsForGroup(2024-08-12) = %v, %v, want employee 4", cells, err)
	}

	on, _ := m.ToggleFavoritesView()
	if !on {
		t.Fatal("ToggleFavoritesView() = false")
	}
	mv, err := m.Matrix(dateutil.Date(2024, 8, 1), "")
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	if len(mv.Rows) != 2 {
		t.Errorf("Matrix() in favorites mode has %d rows, want 2", len(mv.Rows))
	}
}

func TestManager_Holidays(t *testing.T) {
	m := newTestManager(t, dateutil.Date(2025, 1, 1))
	if got := len(m.Holidays(2025)); got != 13 {
		t.Errorf("Holidays(2025) = %d, want 13", got)
	}
	if got := len(m.MonthGrid(dateutil.Date(2025, 2, 1))); got != calendar.GridDays {
		t.Errorf("MonthGrid() = %d days, want %d", got, calendar.GridDays)
	}
}
