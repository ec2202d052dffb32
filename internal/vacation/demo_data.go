package vacation

import "github.com/username/vacation-planner/pkg/dateutil"

// DemoRecords returns the sample vacations loaded when demo data is enabled
func DemoRecords() []Record {
	return []Record{
		{ID: "v1", EmployeeID: "1", Type: TypeUW, StartDate: dateutil.Date(2024, 7, 22), EndDate: dateutil.Date(2024, 7, 26), Status: StatusApproved, Notes: "Wakacje nad morzem"},
		{ID: "v2", EmployeeID: "1", Type: TypeHO, StartDate: dateutil.Date(2024, 7, 15), EndDate: dateutil.Date(2024, 7, 15), Status: StatusApproved},
		{ID: "v3", EmployeeID: "2", Type: TypeCH, StartDate: dateutil.Date(2024, 7, 18), EndDate: dateutil.Date(2024, 7, 19), Status: StatusApproved},
		{ID: "v4", EmployeeID: "3", Type: TypeDEL, StartDate: dateutil.Date(2024, 7, 8), EndDate: dateutil.Date(2024, 7, 10), Status: StatusApproved, Notes: "Konferencja w Berlinie"},
		{ID: "v5", EmployeeID: "1", Type: TypeBL, StartDate: dateutil.Date(2024, 8, 5), EndDate: dateutil.Date(2024, 8, 5), Status: StatusApproved},
		{ID: "v6", EmployeeID: "4", Type: TypeFW, StartDate: dateutil.Date(2024, 8, 12), EndDate: dateutil.Date(2024, 8, 16), Status: StatusApproved, Notes: "Workation na Maderze"},
		{ID: "v7", EmployeeID: "2", Type: TypeUW, StartDate: dateutil.Date(2024, 8, 19), EndDate: dateutil.Date(2024, 8, 23), Status: StatusApproved},
	}
}
