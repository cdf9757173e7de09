package alert

import (
	"context"
	"time"

	"geoshare/internal/domain/authorization"
)

// MatchLevel identifies which containment level connected an alert to a
// location. Display precedence is Commune over EPCI over Region; it never
// affects ordering.
type MatchLevel string

const (
	MatchLevelCommune MatchLevel = "Commune"
	MatchLevelEPCI    MatchLevel = "EPCI"
	MatchLevelRegion  MatchLevel = "Region"
)

// MatchedAlert is an active alert annotated with the level that matched a
// resolved location.
type MatchedAlert struct {
	Alert  *Alert
	Source MatchLevel
}

// TargetedAlert is an alert annotated with human-readable comma lists of
// its target area names per kind, for management listings.
type TargetedAlert struct {
	Alert        *Alert
	CommuneNames string
	EPCINames    string
	RegionNames  string
}

// Repository persists alerts and their three junction sets. Create and
// Delete are atomic across the alert row and every junction row.
type Repository interface {
	// Create persists the alert and one junction row per target id,
	// all-or-nothing, and assigns the alert its id.
	Create(ctx context.Context, a *Alert, targets authorization.TargetAreas) error

	// Delete removes the alert and all its junction rows atomically.
	// Unknown ids yield a not-found error.
	Delete(ctx context.Context, id uint) error

	// FindTargets returns the alert's current target sets. Unknown alert
	// ids yield a not-found error; an existing alert with no junction rows
	// yields empty sets (the integrity anomaly the caller must handle).
	FindTargets(ctx context.Context, id uint) (authorization.TargetAreas, error)

	// ListForAreas returns every alert whose targets intersect any
	// authorized area, newest start first, deduplicated, annotated with
	// matched-area name lists.
	ListForAreas(ctx context.Context, authorized *authorization.AuthorizedAreas) ([]TargetedAlert, error)

	// ListActiveTargeting returns currently-active alerts touching the
	// commune, EPCI or region (0 is a sentinel matching nothing), ordered
	// by severity descending then start time descending.
	ListActiveTargeting(ctx context.Context, communeID, epciID, regionID uint, now time.Time) ([]MatchedAlert, error)
}
