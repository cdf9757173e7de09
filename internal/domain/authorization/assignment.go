// Package authorization implements the responsibility cascade resolver and
// the area authorization guard over the Region ⊃ EPCI ⊃ Commune forest.
package authorization

// Assignment is a direct grant of authority to a user over exactly one area
// or one infrastructure. Exactly one of the four references is set; rows
// violating that are ignored by the resolver.
type Assignment struct {
	UserID           uint
	RegionID         *uint
	EPCIID           *uint
	CommuneID        *uint
	InfrastructureID *string
}

// TargetAreas is a set of (kind, id) pairs across the three alert-target
// levels. Infrastructure ids are deliberately unrepresentable here: alert
// actions never address individual infrastructures.
type TargetAreas struct {
	CommuneIDs []uint
	EPCIIDs    []uint
	RegionIDs  []uint
}

// Count returns the total number of targeted areas across all three kinds.
func (t TargetAreas) Count() int {
	return len(t.CommuneIDs) + len(t.EPCIIDs) + len(t.RegionIDs)
}

// IsEmpty reports whether no area is targeted at any level.
func (t TargetAreas) IsEmpty() bool {
	return t.Count() == 0
}

// Normalize drops zero ids and duplicates within each kind, preserving
// first-seen order. Inputs arrive from JSON payloads where nulls and
// repeated selections are routine.
func (t TargetAreas) Normalize() TargetAreas {
	return TargetAreas{
		CommuneIDs: dedupeNonZero(t.CommuneIDs),
		EPCIIDs:    dedupeNonZero(t.EPCIIDs),
		RegionIDs:  dedupeNonZero(t.RegionIDs),
	}
}

func dedupeNonZero(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
