// Package constants defines shared constant values used across the application.
package constants

// Runtime environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Context keys for values stored in the gin context by middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserType = "user_type"
)

// AccessTokenCookie is the cookie carrying the opaque session token.
const AccessTokenCookie = "access_token"

// Database table names.
const (
	TableRegions         = "regions"
	TableEPCIs           = "epcis"
	TableCommunes        = "communes"
	TableInfrastructures = "infrastructures"
	TableGauges          = "gauges"
	TableAssignments     = "responsibility_assignments"
	TableAlerts          = "alerts"
	TableAlertCommunes   = "alert_communes"
	TableAlertEPCIs      = "alert_epcis"
	TableAlertRegions    = "alert_regions"
	TableOpenings        = "openings"
	TableOpeningDays     = "opening_days"
	TableOpeningExcepts  = "opening_exceptions"
	TableSessions        = "sessions"
)

// User type classification, as carried by the session store.
const (
	UserTypeParticulier  = "PARTICULIER"
	UserTypeEntreprise   = "ENTREPRISE"
	UserTypeCollectivite = "COLLECTIVITE"
	UserTypeAssociation  = "ASSOCIATION"
)
