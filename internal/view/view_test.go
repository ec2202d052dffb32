package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/username/vacation-planner/internal/calendar"
	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/pkg/dateutil"
	"go.uber.org/zap"
)

func newTestProjector(t *testing.T, records ...vacation.Record) (*Projector, *vacation.Store) {
	t.Helper()
	store := vacation.NewStore(zap.NewNop())
	if err := store.Seed(records...); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	dir, err := directory.New(directory.MockEmployees())
	if err != nil {
		t.Fatalf("directory.New() error = %v", err)
	}
	return NewProjector(store, calendar.PolishHolidays(), dir), store
}

func TestProjector_CellForSelf(t *testing.T) {
	p, _ := newTestProjector(t, vacation.DemoRecords()...)

	rec, ok := p.CellForSelf(dateutil.Date(2024, 7, 24), "1")
	if !ok || rec.ID != "v1" {
		t.Errorf("CellForSelf(2024-07-24, 1) = %v, %v, want v1", rec.ID, ok)
	}
	if _, ok := p.CellForSelf(dateutil.Date(2024, 7, 18), "1"); ok {
		t.Error("CellForSelf(2024-07-18, 1) found a record of another employee")
	}
}

func TestProjector_CellsForGroup(t *testing.T) {
	p, _ := newTestProjector(t,
		vacation.Record{EmployeeID: "1", Type: vacation.TypeUW, StartDate: dateutil.Date(2024, 7, 1), EndDate: dateutil.Date(2024, 7, 5)},
		vacation.Record{EmployeeID: "3", Type: vacation.TypeHO, StartDate: dateutil.Date(2024, 7, 3), EndDate: dateutil.Date(2024, 7, 3)},
		vacation.Record{EmployeeID: "2", Type: vacation.TypeCH, StartDate: dateutil.Date(2024, 7, 3), EndDate: dateutil.Date(2024, 7, 3), Status: vacation.StatusRejected},
	)

	got := p.CellsForGroup(dateutil.Date(2024, 7, 3), []string{"1", "3", "2", "1", "5"})
	want := []Occupancy{
		{EmployeeID: "1", Type: vacation.TypeUW},
		{EmployeeID: "3", Type: vacation.TypeHO},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CellsForGroup() = %v, want %v", got, want)
	}

	if got := p.CellsForGroup(dateutil.Date(2024, 7, 9), []string{"1", "3"}); len(got) != 0 {
		t.Errorf("CellsForGroup() on free day = %v, want empty", got)
	}
}

func TestProjector_RangeTypeSummary(t *testing.T) {
	p, _ := newTestProjector(t,
		vacation.Record{EmployeeID: "1", Type: vacation.TypeUW, StartDate: dateutil.Date(2024, 7, 1), EndDate: dateutil.Date(2024, 7, 5)},
		vacation.Record{EmployeeID: "1", Type: vacation.TypeHO, StartDate: dateutil.Date(2024, 7, 6), EndDate: dateutil.Date(2024, 7, 7)},
	)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  Summary
	}{
		{"Uniform and covered", dateutil.Date(2024, 7, 2), dateutil.Date(2024, 7, 4), Summary{Type: vacation.TypeUW, HasType: true}},
		{"Two types", dateutil.Date(2024, 7, 4), dateutil.Date(2024, 7, 7), Summary{Mixed: true}},
		{"Partially covered", dateutil.Date(2024, 7, 6), dateutil.Date(2024, 7, 9), Summary{Mixed: true}},
		{"Uncovered then covered", dateutil.Date(2024, 6, 30), dateutil.Date(2024, 7, 1), Summary{Mixed: true}},
		{"Fully uncovered", dateutil.Date(2024, 7, 10), dateutil.Date(2024, 7, 12), Summary{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.RangeTypeSummary(vacation.NewRange(tt.start, tt.end), "1")
			if got != tt.want {
				t.Errorf("RangeTypeSummary(%v..%v) = %+v, want %+v",
					dateutil.FormatISODate(tt.start), dateutil.FormatISODate(tt.end), got, tt.want)
			}
		})
	}
}

func TestProjector_RangeTypeSummary_WideRange(t *testing.T) {
	p, _ := newTestProjector(t,
		vacation.Record{EmployeeID: "1", Type: vacation.TypeUW, StartDate: dateutil.Date(2024, 7, 1), EndDate: dateutil.Date(2024, 7, 5)},
	)

	wide := vacation.NewRange(dateutil.Date(1, 1, 1), dateutil.Date(9999, 12, 31))
	if got, want := p.RangeTypeSummary(wide, "1"), (Summary{Mixed: true}); got != want {
		t.Errorf("RangeTypeSummary(whole calendar) = %+v, want %+v", got, want)
	}
	if got := p.RangeTypeSummary(wide, "2"); got != (Summary{}) {
		t.Errorf("RangeTypeSummary(whole calendar, no records) = %+v, want empty", got)
	}
}

func TestProjector_SubmitThenSummaryRoundTrip(t *testing.T) {
	p, store := newTestProjector(t, vacation.DemoRecords()...)

	for _, typ := range vacation.Types {
		r := vacation.NewRange(dateutil.Date(2024, 7, 20), dateutil.Date(2024, 7, 23))
		if typ.SingleDayOnly() {
			r = vacation.NewRange(r.Start, r.Start)
		}
		if _, err := store.SubmitRange("1", r, typ, ""); err != nil {
			t.Fatalf("SubmitRange(%s) error = %v", typ, err)
		}
		want := Summary{Type: typ, HasType: true}
		if got := p.RangeTypeSummary(r, "1"); got != want {
			t.Errorf("RangeTypeSummary after SubmitRange(%s) = %+v, want %+v", typ, got, want)
		}
	}
}

func TestProjector_Month(t *testing.T) {
	p, _ := newTestProjector(t, vacation.DemoRecords()...)
	viewer := Viewer{SelfID: "1", Favorites: []string{"4", "1"}, FavoritesMode: true, Today: dateutil.Date(2024, 8, 14)}

	mv := p.Month(dateutil.Date(2024, 8, 20), viewer)

	if len(mv.Days) != calendar.GridDays {
		t.Fatalf("Month() has %d days, want %d", len(mv.Days), calendar.GridDays)
	}
	if !mv.Days[0].Date.Equal(dateutil.Date(2024, 7, 29)) {
		t.Errorf("first grid day = %v, want 2024-07-29", dateutil.FormatISODate(mv.Days[0].Date))
	}
	if mv.Days[0].IsCurrentMonth || !mv.Days[3].IsCurrentMonth {
		t.Error("IsCurrentMonth flags wrong around month start")
	}

	byDate := make(map[string]Day, len(mv.Days))
	for _, day := range mv.Days {
		byDate[dateutil.FormatISODate(day.Date)] = day
	}

	if day := byDate["2024-08-15"]; !day.IsHoliday() || day.Group == nil {
		t.Errorf("2024-08-15 = %+v, want holiday with FW overlay", day)
	}
	if day := byDate["2024-08-14"]; !day.IsToday {
		t.Error("2024-08-14 should be today")
	}
	if day := byDate["2024-08-05"]; day.Self == nil || day.Self.Type != vacation.TypeBL {
		t.Errorf("2024-08-05 Self = %v, want BL record", day.Self)
	}
	if day := byDate["2024-08-05"]; len(day.Group) != 1 || day.Group[0].EmployeeID != "1" {
		t.Errorf("2024-08-05 Group = %v, want only self", day.Group)
	}
	if day := byDate["2024-08-10"]; !day.IsWeekend {
		t.Error("2024-08-10 should be a weekend")
	}

	viewer.FavoritesMode = false
	for _, day := range p.Month(dateutil.Date(2024, 8, 1), viewer).Days {
		if day.Group != nil {
			t.Fatalf("Group overlay filled outside favorites mode on %v", dateutil.FormatISODate(day.Date))
		}
	}
}

func TestProjector_Matrix(t *testing.T) {
	p, _ := newTestProjector(t, vacation.DemoRecords()...)

	tests := []struct {
		name    string
		viewer  Viewer
		search  string
		wantIDs []string
	}{
		{"All employees", Viewer{SelfID: "3"}, "", []string{"3", "1", "5", "2", "4"}},
		{"Search keeps self", Viewer{SelfID: "3"}, "now", []string{"3", "2"}},
		{"Favorites mode", Viewer{SelfID: "1", Favorites: []string{"4", "2"}, FavoritesMode: true}, "", []string{"1", "2", "4"}},
		{"Favorites mode with search", Viewer{SelfID: "1", Favorites: []string{"4", "2"}, FavoritesMode: true}, "krzysztof", []string{"1", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mv := p.Matrix(dateutil.Date(2024, 7, 1), tt.viewer, tt.search)

			var got []string
			for _, row := range mv.Rows {
				got = append(got, row.Employee.ID)
			}
			if !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("Matrix() rows = %v, want %v", got, tt.wantIDs)
			}
			if !mv.Rows[0].IsSelf {
				t.Error("first row should be the viewer")
			}
		})
	}
}

func TestProjector_MatrixCells(t *testing.T) {
	p, _ := newTestProjector(t, vacation.DemoRecords()...)
	mv := p.Matrix(dateutil.Date(2024, 8, 1), Viewer{SelfID: "1"}, "")

	if len(mv.Columns) != 31 {
		t.Fatalf("Matrix() columns = %d, want 31", len(mv.Columns))
	}
	if col := mv.Columns[14]; col.Kind != calendar.DayTypeHoliday || col.Weekday != "Cz" {
		t.Errorf("2024-08-15 column = %+v, want holiday on Cz", col)
	}
	if col := mv.Columns[2]; col.Kind != calendar.DayTypeWeekend || col.Weekday != "So" {
		t.Errorf("2024-08-03 column = %+v, want weekend on So", col)
	}

	var row MatrixRow
	for _, r := range mv.Rows {
		if r.Employee.ID == "4" {
			row = r
		}
	}
	if cell := row.Cells[11]; !cell.Absent() || cell.Type != vacation.TypeFW {
		t.Errorf("employee 4 on 2024-08-12 = %+v, want FW", cell)
	}
	if cell := row.Cells[16]; cell.Absent() {
		t.Errorf("employee 4 on 2024-08-17 = %+v, want present", cell)
	}
}
