package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" time of day.
var ErrInvalidTimeString = errors.New("invalid time string format")

const (
	minutesPerHour = 60
	// EndOfDay is the largest accepted minute offset ("24:00").
	EndOfDay = 24 * minutesPerHour
)

// TimeString is a time of day in "HH:MM" form.
// Values read from storage may be malformed; use Minutes to check.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and normalizes "H:MM", "HH:MM" or "HH:MM:SS".
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, ok := ParseMinutes(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return FromMinutes(minutes), nil
}

// FromMinutes formats a minute offset as "HH:MM".
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour))
}

// ParseMinutes converts "HH:MM" into minutes since midnight.
// The boolean is false when either component is not an integer or is out of range.
// A trailing ":SS" component (Postgres TIME) is tolerated and ignored.
func ParseMinutes(text string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	if !isDigits(parts[0]) || len(parts[0]) > 2 || !isDigits(parts[1]) || len(parts[1]) != 2 {
		return 0, false
	}
	if len(parts) == 3 && (!isDigits(parts[2]) || len(parts[2]) != 2) {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hours < 0 || minutes < 0 || minutes >= minutesPerHour {
		return 0, false
	}

	total := hours*minutesPerHour + minutes
	if total > EndOfDay {
		return 0, false
	}
	return total, true
}

// isDigits is false for empty strings and for signs, which strconv.Atoi accepts.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IntervalsOverlap reports whether [startA, endA) and [startB, endB) intersect.
// Touching endpoints are not an overlap.
func IntervalsOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

// Minutes returns the minute offset of t and whether t is well formed.
func (t TimeString) Minutes() (int, bool) {
	return ParseMinutes(string(t))
}

// Validate returns ErrInvalidTimeString if t is malformed.
func (t TimeString) Validate() error {
	if _, ok := t.Minutes(); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Normalize rewrites a well-formed value as zero-padded "HH:MM".
// Malformed values are returned unchanged.
func (t TimeString) Normalize() TimeString {
	minutes, ok := t.Minutes()
	if !ok {
		return t
	}
	return FromMinutes(minutes)
}

// IsZero reports whether t is empty.
func (t TimeString) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// IsBefore compares two well-formed values; malformed values never compare.
func (t TimeString) IsBefore(other TimeString) bool {
	a, okA := t.Minutes()
	b, okB := other.Minutes()
	return okA && okB && a < b
}

// IsAfter compares two well-formed values; malformed values never compare.
func (t TimeString) IsAfter(other TimeString) bool {
	a, okA := t.Minutes()
	b, okB := other.Minutes()
	return okA && okB && a > b
}

// MinutesUntil returns other - t in minutes.
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	a, okA := t.Minutes()
	b, okB := other.Minutes()
	if !okA || !okB {
		return 0, ErrInvalidTimeString
	}
	return b - a, nil
}

func (t TimeString) String() string {
	return string(t)
}

// Scan implements sql.Scanner. Well-formed values are normalized to "HH:MM",
// anything else is kept verbatim so readers can decide what to do with it.
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types.TimeString: unsupported scan type %T", src)
	}

	if minutes, ok := ParseMinutes(raw); ok {
		*t = FromMinutes(minutes)
		return nil
	}
	*t = TimeString(raw)
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
