package authorization

// CanTarget reports whether the closure covers every requested target area.
// A single unauthorized pair denies the whole batch: creating an alert must
// never broadcast into territory the caller does not manage. Callers reject
// empty requests before consulting the guard.
func (a *AuthorizedAreas) CanTarget(requested TargetAreas) bool {
	if requested.IsEmpty() {
		return false
	}
	return a.Communes.ContainsAll(requested.CommuneIDs) &&
		a.EPCIs.ContainsAll(requested.EPCIIDs) &&
		a.Regions.ContainsAll(requested.RegionIDs)
}

// CanRevoke reports whether the closure intersects any of an alert's
// existing target areas. Deleting is a shared-resource action: once several
// stakeholders cover overlapping territory, any one of them revoking the
// alert is accepted. Broader match on delete, strict match-all on create.
func (a *AuthorizedAreas) CanRevoke(targets TargetAreas) bool {
	return a.Communes.ContainsAny(targets.CommuneIDs) ||
		a.EPCIs.ContainsAny(targets.EPCIIDs) ||
		a.Regions.ContainsAny(targets.RegionIDs)
}

// CanManageInfrastructure reports whether the closure grants authority over
// one specific infrastructure: either a direct infrastructure assignment, or
// area authority over the commune the infrastructure is pinned to.
func (a *AuthorizedAreas) CanManageInfrastructure(infraID string, communeID uint) bool {
	if a.Infrastructures.Has(infraID) {
		return true
	}
	return communeID != 0 && a.Communes.Has(communeID)
}
