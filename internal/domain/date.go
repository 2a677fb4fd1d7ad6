package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date in ISO-8601 form (YYYY-MM-DD). The fixed
// format makes lexicographic comparison equal to chronological
// comparison, so dates order correctly as plain strings.
type Date string

// ParseDate validates s and returns it as a Date.
func ParseDate(s string) (Date, error) {
	d := Date(s)
	if err := d.Validate(); err != nil {
		return "", err
	}

	return d, nil
}

// Validate checks that the date is a real calendar date in ISO form.
func (d Date) Validate() error {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	// time.Parse accepts some non-canonical spellings; require an
	// exact round-trip.
	if t.Format("2006-01-02") != string(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}

	return nil
}

func (d Date) String() string {
	return string(d)
}

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool {
	return d < other
}

// After reports whether d is chronologically after other.
func (d Date) After(other Date) bool {
	return d > other
}
