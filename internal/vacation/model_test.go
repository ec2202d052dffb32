package vacation

import (
	"errors"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"UW", TypeUW, false},
		{"uw", TypeUW, false},
		{"Del", TypeDEL, false},
		{"DEL", TypeDEL, false},
		{" bl ", TypeBL, false},
		{"XX", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidType) {
					t.Errorf("ParseType(%q) error = %v, want ErrInvalidType", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseType(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestType_Label(t *testing.T) {
	for _, typ := range Types {
		if typ.Label() == "" {
			t.Errorf("%s.Label() is empty", typ)
		}
	}
	if Type("XX").IsValid() {
		t.Error("Type(XX).IsValid() = true, want false")
	}
}

func TestRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want bool
	}{
		{"Touching on one day", NewRange(d(7, 1), d(7, 5)), NewRange(d(7, 5), d(7, 9)), true},
		{"Adjacent", NewRange(d(7, 1), d(7, 4)), NewRange(d(7, 5), d(7, 9)), false},
		{"Nested", NewRange(d(7, 1), d(7, 31)), NewRange(d(7, 10), d(7, 10)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestOrderedRange(t *testing.T) {
	r := OrderedRange(d(7, 9), d(7, 2))
	if !r.Start.Equal(d(7, 2)) || !r.End.Equal(d(7, 9)) {
		t.Errorf("OrderedRange(07-09, 07-02) = %v, want 2024-07-02..2024-07-09", r)
	}
	if len(r.Days()) != 8 {
		t.Errorf("Days() = %d, want 8", len(r.Days()))
	}
}

func TestReconcile_DoesNotModifyInput(t *testing.T) {
	existing := []Record{{ID: "a", EmployeeID: "E", Type: TypeUW, StartDate: d(7, 1), EndDate: d(7, 31), Status: StatusApproved}}
	out := Reconcile(existing, "E", NewRange(d(7, 10), d(7, 12)), sequentialIDs())

	if len(out) != 2 {
		t.Fatalf("Reconcile() = %d records, want 2", len(out))
	}
	if existing[0].ID != "a" || !existing[0].EndDate.Equal(d(7, 31)) {
		t.Errorf("input modified: %+v", existing[0])
	}
}
