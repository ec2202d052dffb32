package balance

// DefaultAllotments returns the built-in yearly UW allotments of the demo
// directory
func DefaultAllotments() []Allotment {
	return []Allotment{
		{EmployeeID: "1", DaysPerYear: 26},
		{EmployeeID: "2", DaysPerYear: 20},
		{EmployeeID: "3", DaysPerYear: 26},
		{EmployeeID: "4", DaysPerYear: 26},
		{EmployeeID: "5", DaysPerYear: 26},
	}
}
