package infrastructure

import (
	"context"
)

// Candidate pairs a facility with its live gauge for proximity queries.
type Candidate struct {
	Infrastructure *Infrastructure
	Gauge          Gauge
}

// Repository persists facilities, their gauges and opening schedules.
// Deleting a facility cascades to its gauge, opening rows and
// responsibility assignments.
type Repository interface {
	Create(ctx context.Context, infra *Infrastructure, maxCapacity uint) error
	Update(ctx context.Context, infra *Infrastructure) error
	Delete(ctx context.Context, infraID string) error
	FindByID(ctx context.Context, infraID string) (*Infrastructure, error)

	// ListCandidates returns every facility that has coordinates and a
	// positive maximum gauge, with gauge values read at call time.
	ListCandidates(ctx context.Context) ([]Candidate, error)

	GaugeFor(ctx context.Context, infraID string) (Gauge, error)
	SetGaugeMax(ctx context.Context, infraID string, max uint) error

	OpeningScheduleFor(ctx context.Context, infraID string) (*OpeningSchedule, error)
	ReplaceWeeklyDays(ctx context.Context, infraID string, days []int) error
	AddOpeningException(ctx context.Context, infraID string, exc *OpeningException) error
	// DeleteOpeningException removes one dated override; unknown pairs
	// yield a not-found error.
	DeleteOpeningException(ctx context.Context, infraID string, exceptionID uint) error
}
