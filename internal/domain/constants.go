package domain

// Role-based reservation duration caps (inclusive day count)
const (
	MaxReservationDaysUser    = 5
	MaxReservationDaysManager = 30
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
