// Package area models the three-level administrative hierarchy
// (Region ⊃ EPCI ⊃ Commune). Areas are seed reference data: the core reads
// them but never mutates them, so they are plain value structs rather than
// guarded aggregates.
package area

// Kind identifies one of the three administrative levels.
type Kind string

const (
	KindRegion  Kind = "region"
	KindEPCI    Kind = "epci"
	KindCommune Kind = "commune"
)

// IsValid reports whether the kind is one of the three known levels.
func (k Kind) IsValid() bool {
	switch k {
	case KindRegion, KindEPCI, KindCommune:
		return true
	}
	return false
}

// Region is the top containment level.
type Region struct {
	ID   uint
	Name string
}

// EPCI is the intermediate containment level. RegionID is nil for an EPCI
// not attached to any region (the containment relation is a forest, not a
// total function).
type EPCI struct {
	ID       uint
	Name     string
	RegionID *uint
}

// Commune is the leaf containment level. A commune belongs to at most one
// EPCI and carries the postal code used by the location matcher.
type Commune struct {
	ID         uint
	Name       string
	PostalCode string
	EPCIID     *uint
}
