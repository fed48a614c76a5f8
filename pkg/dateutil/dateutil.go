// Package dateutil centralizes calendar-date parsing and comparison so every
// date rule in the service shares one semantics: UTC, midnight-normalized,
// no timezone offsets.
package dateutil

import (
	"errors"
	"fmt"
	"time"
)

const (
	// LayoutDate is the wire format for search dates (yyyy-MM-dd).
	LayoutDate = "2006-01-02"

	// LayoutTimestampMillis is the ISO-8601-with-milliseconds layout used for
	// entity timestamps elsewhere in the platform. The search path never uses it.
	LayoutTimestampMillis = "2006-01-02T15:04:05.000Z"
)

var ErrInvalidDate = errors.New("invalid date")

// Parse parses text under the given layout in UTC. It fails with ErrInvalidDate
// on layout mismatches and on calendar-invalid dates (month 13, day 32).
// Go's parser tolerates missing leading zeros, so a round-trip reformat is
// required to match the input exactly.
func Parse(text, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, text, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match layout %q", ErrInvalidDate, text, layout)
	}
	if t.Format(layout) != text {
		return time.Time{}, fmt.Errorf("%w: %q does not match layout %q", ErrInvalidDate, text, layout)
	}
	return t, nil
}

// IsValid reports whether text parses under layout. It never fails.
func IsValid(text, layout string) bool {
	_, err := Parse(text, layout)
	return err == nil
}

// IsPast reports whether date is strictly earlier than now (UTC).
func IsPast(date, now time.Time) (bool, error) {
	if date.IsZero() || now.IsZero() {
		return false, ErrInvalidDate
	}
	return date.Before(now.UTC()), nil
}

// IsOnOrBefore reports whether target is on or before reference (inclusive).
func IsOnOrBefore(target, reference time.Time) (bool, error) {
	if target.IsZero() || reference.IsZero() {
		return false, ErrInvalidDate
	}
	return !target.After(reference), nil
}

// DaysBetween returns the absolute span in fractional days between the
// midnight-normalized instants of a and b. Argument order does not matter.
func DaysBetween(a, b time.Time) (float64, error) {
	if a.IsZero() || b.IsZero() {
		return 0, ErrInvalidDate
	}

	diff := midnight(b).Sub(midnight(a))
	if diff < 0 {
		diff = -diff
	}
	return diff.Hours() / 24, nil
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
