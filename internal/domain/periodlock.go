package domain

import (
	"fmt"
	"time"
)

// PeriodLock closes the inclusive date interval [PeriodStart,
// PeriodEnd] for a company. Locks are append-only: once recorded they
// are never edited or removed.
type PeriodLock struct {
	ID          string
	CompanyID   string
	PeriodStart Date
	PeriodEnd   Date
	LockedAt    time.Time
	LockedBy    string
}

// ValidateRange checks that [start, end] is a well-formed inclusive
// date interval.
func ValidateRange(start, end Date) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidLockRange, err)
	}

	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidLockRange, err)
	}

	if start.After(end) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidLockRange, start, end)
	}

	return nil
}

// Covers reports whether date falls inside the lock's interval.
func (l *PeriodLock) Covers(date Date) bool {
	return !date.Before(l.PeriodStart) && !date.After(l.PeriodEnd)
}

// Overlaps reports whether [start, end] intersects the lock's interval.
// Both intervals are inclusive.
func (l *PeriodLock) Overlaps(start, end Date) bool {
	return !start.After(l.PeriodEnd) && !end.Before(l.PeriodStart)
}
