package area

import "context"

// HierarchyReader exposes the containment edges needed by the cascade
// resolver. Both methods return deduplicated child ids; an empty input
// yields an empty result without touching the store.
type HierarchyReader interface {
	EPCIIDsByRegionIDs(ctx context.Context, regionIDs []uint) ([]uint, error)
	CommuneIDsByEPCIIDs(ctx context.Context, epciIDs []uint) ([]uint, error)
}

// Repository is the read-only view over the area reference data.
type Repository interface {
	HierarchyReader

	RegionsByIDs(ctx context.Context, ids []uint) ([]Region, error)
	EPCIsByIDs(ctx context.Context, ids []uint) ([]EPCI, error)
	CommunesByIDs(ctx context.Context, ids []uint) ([]Commune, error)

	// CommunesByPostalCode returns every commune sharing the postal code,
	// ordered by id for deterministic first-candidate selection.
	CommunesByPostalCode(ctx context.Context, postalCode string) ([]Commune, error)

	// HierarchyForCommune resolves the commune's EPCI and, through it, its
	// region. Either id is 0 when the containment edge is missing.
	HierarchyForCommune(ctx context.Context, communeID uint) (epciID, regionID uint, err error)

	// FindRegionByNameLike returns the first region whose name contains the
	// given fragment (case-insensitive), or nil when none matches.
	FindRegionByNameLike(ctx context.Context, fragment string) (*Region, error)
}
