// Package user carries the authenticated identity attached to a request.
// Accounts, registration and login live in a separate system; sessions are
// only looked up here.
package user

import "geoshare/internal/shared/constants"

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	ID   uint
	Type string
}

// CanManageInfrastructures reports whether the account type may create or
// administer facilities.
func (i Identity) CanManageInfrastructures() bool {
	switch i.Type {
	case constants.UserTypeEntreprise, constants.UserTypeCollectivite, constants.UserTypeAssociation:
		return true
	}
	return false
}

// CanCreateAlerts reports whether the account type may publish alerts.
// ENTREPRISE accounts manage facilities but never alert territories.
func (i Identity) CanCreateAlerts() bool {
	return i.Type != constants.UserTypeEntreprise && i.Type != ""
}
