package directory

// DefaultUserID is the demo user (Anna Kowalska)
const DefaultUserID = "1"

// MockEmployees returns the built-in demo directory
func MockEmployees() []Employee {
	return []Employee{
		{ID: "1", FirstName: "Anna", LastName: "Kowalska", Email: "anna.kowalska@example.com", Team: "Marketing", Role: "Specjalista ds. Marketingu"},
		{ID: "2", FirstName: "Piotr", LastName: "Nowak", Email: "piotr.nowak@example.com", Team: "Marketing", Role: "Młodszy Specjalista"},
		{ID: "3", FirstName: "Zofia", LastName: "Wiśniewska", Email: "zofia.wisniewska@example.com", Team: "IT", Role: "Programista"},
		{ID: "4", FirstName: "Krzysztof", LastName: "Wójcik", Email: "krzysztof.wojcik@example.com", Team: "IT", Role: "Administrator Systemów"},
		{ID: "5", FirstName: "Ewa", LastName: "Lewandowska", Email: "ewa.lewandowska@example.com", Team: "HR", Role: "HR Manager"},
	}
}
