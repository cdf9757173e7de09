// Package geocoding defines the reverse-geocoding port used to turn
// coordinates into an administrative location.
package geocoding

import "context"

// Location is the administrative reading of a coordinate pair.
type Location struct {
	PostalCode string
	Locality   string
	Region     string
}

// Reverser resolves coordinates to a location. Implementations time-bound
// the call; failures surface as upstream errors that fail-open paths
// convert into degraded empty results.
type Reverser interface {
	Reverse(ctx context.Context, lat, lon float64) (*Location, error)
}
