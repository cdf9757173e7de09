package authorization

import (
	"context"
	"fmt"

	"geoshare/internal/domain/area"
	"geoshare/internal/shared/utils/setutil"
)

// AuthorizedAreas is the transitive closure of a user's direct assignments:
// every area the user may treat as authorized, per level, plus the
// infrastructures granted directly (their own authorization path, never
// folded into the area sets).
type AuthorizedAreas struct {
	Regions         *setutil.UintSet
	EPCIs           *setutil.UintSet
	Communes        *setutil.UintSet
	Infrastructures *setutil.StringSet
}

// NewAuthorizedAreas returns an empty closure.
func NewAuthorizedAreas() *AuthorizedAreas {
	return &AuthorizedAreas{
		Regions:         setutil.NewUintSet(),
		EPCIs:           setutil.NewUintSet(),
		Communes:        setutil.NewUintSet(),
		Infrastructures: setutil.NewStringSet(),
	}
}

// HasAreaAuthority reports whether the closure grants authority over at
// least one area at any level.
func (a *AuthorizedAreas) HasAreaAuthority() bool {
	return !a.Regions.IsEmpty() || !a.EPCIs.IsEmpty() || !a.Communes.IsEmpty()
}

// Resolver computes the containment closure of direct assignments.
// The hierarchy is a strict two-level forest, so the expansion is two
// breadth-first passes rather than a general graph walk.
type Resolver struct {
	hierarchy area.HierarchyReader
}

// NewResolver creates a Resolver over the given hierarchy view.
func NewResolver(hierarchy area.HierarchyReader) *Resolver {
	return &Resolver{hierarchy: hierarchy}
}

// Resolve expands the direct assignments downward: every directly-assigned
// region contributes its child EPCIs, then the union of direct and expanded
// EPCIs contributes its child communes. Regions never expand sideways.
// The operation is idempotent: resolving a closure's own areas as direct
// assignments yields the same closure.
func (r *Resolver) Resolve(ctx context.Context, direct []Assignment) (*AuthorizedAreas, error) {
	result := NewAuthorizedAreas()

	for _, a := range direct {
		switch {
		case a.RegionID != nil && *a.RegionID != 0:
			result.Regions.Add(*a.RegionID)
		case a.EPCIID != nil && *a.EPCIID != 0:
			result.EPCIs.Add(*a.EPCIID)
		case a.CommuneID != nil && *a.CommuneID != 0:
			result.Communes.Add(*a.CommuneID)
		case a.InfrastructureID != nil && *a.InfrastructureID != "":
			result.Infrastructures.Add(*a.InfrastructureID)
		}
	}

	if !result.Regions.IsEmpty() {
		epciIDs, err := r.hierarchy.EPCIIDsByRegionIDs(ctx, result.Regions.ToSortedSlice())
		if err != nil {
			return nil, fmt.Errorf("failed to expand regions to EPCIs: %w", err)
		}
		result.EPCIs.AddAll(epciIDs)
	}

	if !result.EPCIs.IsEmpty() {
		communeIDs, err := r.hierarchy.CommuneIDsByEPCIIDs(ctx, result.EPCIs.ToSortedSlice())
		if err != nil {
			return nil, fmt.Errorf("failed to expand EPCIs to communes: %w", err)
		}
		result.Communes.AddAll(communeIDs)
	}

	return result, nil
}
