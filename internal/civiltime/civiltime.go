package civiltime

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking-api/internal/timezone"
)

// ======================================================
// WIRE FORMATS
// ======================================================

// Wire formats stored in the bookings table and sent to Square.
const (
	WireDate = "2006-01-02"
	WireTime = "15:04:05"
)

var dateLayouts = []string{
	WireDate,     // 2026-02-05
	"01/02/2006", // 02/05/2026
}

var timeLayouts = []string{
	WireTime,     // 15:30:00
	"15:04",      // 15:30
	"3:04 PM",    // 3:30 PM
	"3:04PM",     // 3:30PM
	"3:04:05 PM", // 3:30:00 PM
}

// ======================================================
// PARSE ERRORS
// ======================================================

type ParseError struct {
	Field string // "date" or "time"
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable %s: %q", e.Field, e.Input)
}

// ======================================================
// CIVIL DATE / TIME -> WIRE
// ======================================================

// ParseDate accepts ISO (YYYY-MM-DD) and US (MM/DD/YYYY) input and
// normalizes to the ISO wire format. Bad input is an error, never "today".
func ParseDate(s string) (string, error) {
	in := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t.Format(WireDate), nil
		}
	}
	return "", &ParseError{Field: "date", Input: s}
}

// ParseTime accepts 24-hour (H:MM, H:MM:SS) and 12-hour (H:MM AM/PM) input
// and normalizes to zero-padded 24-hour wire format.
func ParseTime(s string) (string, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t.Format(WireTime), nil
		}
	}
	return "", &ParseError{Field: "time", Input: s}
}

// ======================================================
// WIRE -> INSTANT
// ======================================================

// Resolve interprets a wire date + time-of-day in the given IANA zone and
// returns the absolute instant. An empty or unknown zone means UTC.
//
// This is the only sanctioned path for comparing an appointment against
// "now" — never compare civil strings directly.
func Resolve(date string, tod string, tz string) (time.Time, error) {
	wd, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	wt, err := ParseTime(tod)
	if err != nil {
		return time.Time{}, err
	}

	// ParseInLocation normalizes nonexistent local times (DST gaps)
	// instead of failing.
	return time.ParseInLocation(
		WireDate+" "+WireTime,
		wd+" "+wt,
		timezone.Location(tz),
	)
}

// DayRange returns the UTC instants bounding the civil date's local day,
// [start, end). Availability searches must use these, not naive UTC
// midnights.
func DayRange(date string, tz string) (time.Time, time.Time, error) {
	start, err := Resolve(date, "00:00:00", tz)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC(), nil
}

// ======================================================
// INSTANT -> DISPLAY
// ======================================================

type Style int

const (
	StyleShort Style = iota // "3:30 PM"
	StyleLong               // "Monday, October 28, 2025 at 3:30 PM"
)

// FormatDisplay renders an instant in the location's zone, not the
// server's. Empty zone renders as UTC.
func FormatDisplay(t time.Time, tz string, style Style) string {
	local := t.In(timezone.Location(tz))

	switch style {
	case StyleLong:
		return local.Format("Monday, January 2, 2006 at 3:04 PM")
	default:
		return local.Format("3:04 PM")
	}
}
