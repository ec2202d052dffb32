package calendar

// polishHolidays holds the Polish public holidays known at build time.
// Further years come from a holidays file (see FileCalendar).
var polishHolidays = map[int]map[string]string{
	2024: {
		"01-01": "Nowy Rok",
		"01-06": "Trzech Króli",
		"03-31": "Wielkanoc",
		"04-01": "Poniedziałek Wielkanocny",
		"05-01": "Święto Pracy",
		"05-03": "Święto Konstytucji 3 Maja",
		"05-19": "Zesłanie Ducha Świętego (Zielone Świątki)",
		"05-30": "Boże Ciało",
		"08-15": "Wniebowzięcie Najświętszej Maryi Panny, Święto Wojska Polskiego",
		"11-01": "Wszystkich Świętych",
		"11-11": "Narodowe Święto Niepodległości",
		"12-25": "Boże Narodzenie (pierwszy dzień)",
		"12-26": "Boże Narodzenie (drugi dzień)",
	},
	2025: {
		"01-01": "Nowy Rok",
		"01-06": "Trzech Króli",
		"04-20": "Wielkanoc",
		"04-21": "Poniedziałek Wielkanocny",
		"05-01": "Święto Pracy",
		"05-03": "Święto Konstytucji 3 Maja",
		"06-08": "Zesłanie Ducha Świętego (Zielone Świątki)",
		"06-19": "Boże Ciało",
		"08-15": "Wniebowzięcie Najświętszej Maryi Panny, Święto Wojska Polskiego",
		"11-01": "Wszystkich Świętych",
		"11-11": "Narodowe Święto Niepodległości",
		"12-25": "Boże Narodzenie (pierwszy dzień)",
		"12-26": "Boże Narodzenie (drugi dzień)",
	},
}

// PolishHolidays returns a new table seeded with the built-in Polish holidays
func PolishHolidays() *HolidayTable {
	table := NewHolidayTable()
	for year, days := range polishHolidays {
		table.SetYear(year, days)
	}
	return table
}
