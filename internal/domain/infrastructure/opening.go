package infrastructure

import (
	"fmt"
	"time"
)

// ExceptionType marks a dated exception as forcing the facility open or
// closed over its date range.
type ExceptionType string

const (
	ExceptionOpen   ExceptionType = "OUVERT"
	ExceptionClosed ExceptionType = "FERME"
)

func (t ExceptionType) IsValid() bool {
	return t == ExceptionOpen || t == ExceptionClosed
}

// OpeningException is a dated override of the weekly pattern, inclusive on
// both bounds.
type OpeningException struct {
	ID        uint
	StartDate time.Time
	EndDate   time.Time
	Type      ExceptionType
}

// NewOpeningException validates a dated override. Dates are compared at day
// granularity; callers pass midnight-truncated values.
func NewOpeningException(startDate, endDate time.Time, excType ExceptionType) (*OpeningException, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not precede start date")
	}
	if !excType.IsValid() {
		return nil, fmt.Errorf("invalid exception type %q", excType)
	}
	return &OpeningException{StartDate: startDate, EndDate: endDate, Type: excType}, nil
}

// Covers reports whether the given day falls inside the exception range.
func (e *OpeningException) Covers(day time.Time) bool {
	return !day.Before(e.StartDate) && !day.After(e.EndDate)
}

// OpeningSchedule is the weekly open-day pattern of a facility plus its
// dated exceptions. Weekday numbering follows time.Weekday (Sunday = 0).
type OpeningSchedule struct {
	WeeklyDays []int
	Exceptions []OpeningException
}

// ValidateWeeklyDays rejects out-of-range or duplicate weekday numbers.
func ValidateWeeklyDays(days []int) error {
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return fmt.Errorf("weekday %d out of range 0-6", d)
		}
		if seen[d] {
			return fmt.Errorf("duplicate weekday %d", d)
		}
		seen[d] = true
	}
	return nil
}

// IsOpenOn resolves open/closed for a day: a covering exception wins over
// the weekly pattern, most recently added exception first.
func (s *OpeningSchedule) IsOpenOn(day time.Time) bool {
	for i := len(s.Exceptions) - 1; i >= 0; i-- {
		if s.Exceptions[i].Covers(day) {
			return s.Exceptions[i].Type == ExceptionOpen
		}
	}
	weekday := int(day.Weekday())
	for _, d := range s.WeeklyDays {
		if d == weekday {
			return true
		}
	}
	return false
}
