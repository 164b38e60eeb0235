package domain

// Default venue parameters, overridable through configuration
const (
	DefaultMaxCapacity        = 300
	DefaultCalendarWindowDays = 120
	DefaultExportWindowDays   = 180
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
