package domain

// Pricing defaults
const (
	DefaultLaborRate          = 350.0 // MAD per hour
	DefaultTaxRate            = 0.20  // VAT
	DefaultRushRate           = 0.25  // surcharge on parts + labor
	DefaultHoursPerWorkDay    = 8.0
	DefaultRushBufferDays     = 2
	DefaultStandardBufferDays = 5
	DefaultQuoteValidityDays  = 30
	DefaultCurrency           = "MAD"
)

// Identifier prefixes
const (
	QuoteIDPrefix             = "QT-"
	BookingIDPrefix           = "BK-"
	DefaultConfirmationPrefix = "AAW"
	ConfirmationCodeLength    = 6
)

// DefaultTimezone все точки работают в одном часовом поясе
const DefaultTimezone = "Africa/Casablanca"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
