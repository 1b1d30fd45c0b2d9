package timeutil

import (
	"time"
)

// SAST is the South African Standard Time location (UTC+2)
var SAST *time.Location

func init() {
	var err error
	SAST, err = time.LoadLocation("Africa/Johannesburg")
	if err != nil {
		// Fallback: create fixed zone if Africa/Johannesburg not available
		SAST = time.FixedZone("SAST", 2*60*60) // UTC+2
	}
}

// Now returns the current time in SAST
func Now() time.Time {
	return time.Now().In(SAST)
}

// ToSAST converts any time to SAST
func ToSAST(t time.Time) time.Time {
	return t.In(SAST)
}

// LocalStamp returns the current SAST wall-clock time in the
// "YYYY-MM-DD HH:MM:SS" form the portal API expects. This is the single
// implementation of the timestamp the original system assembled by hand
// with timezone offset arithmetic.
func LocalStamp() string {
	return Now().Format(DateTimeLayout)
}

// MonthYear formats a date as short month + year ("Jan 2006"), the
// en-ZA convention used for the "inactive since" label.
func MonthYear(t time.Time) string {
	return t.In(SAST).Format(MonthYearLayout)
}

// ParseDate parses a plain "YYYY-MM-DD" date in SAST.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, SAST)
}

// Common layouts for SAST formatting
const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	DateTimeLayout  = "2006-01-02 15:04:05"
	MonthYearLayout = "Jan 2006"
	DisplayLayout   = "02 Jan 2006"
)
