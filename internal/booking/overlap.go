package booking

import (
	"errors"
	"time"
)

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceUnavailable = errors.New("resource is not available for booking")
	ErrInvalidInterval     = errors.New("invalid booking interval")
	ErrConflict            = errors.New("conflict detected: an approved booking overlaps this interval")
	ErrRequestNotFound     = errors.New("booking request not found")
	ErrNotPending          = errors.New("booking request is not pending")
	ErrNotOwner            = errors.New("booking request belongs to another user")
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Times are zero-padded HH:MM strings, so lexicographic order
// matches clock order. Intervals that only touch at a boundary do not
// overlap.
func Overlaps(s1, e1, s2, e2 string) bool {
	return s1 < e2 && s2 < e1
}

// ValidDate reports whether date is a YYYY-MM-DD calendar day.
func ValidDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// ValidateInterval checks that date is a calendar day, start and end are
// wall-clock HH:MM values on that day, and end is strictly after start.
func ValidateInterval(date, start, end string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrInvalidInterval
	}
	if !validClock(start) || !validClock(end) {
		return ErrInvalidInterval
	}
	if end <= start {
		return ErrInvalidInterval
	}
	return nil
}

// validClock requires the zero-padded form, "9:00" would break the
// string comparison in Overlaps.
func validClock(v string) bool {
	t, err := time.Parse(clockLayout, v)
	return err == nil && t.Format(clockLayout) == v
}
