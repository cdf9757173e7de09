package dto

import "time"

// AlertDTO is the wire shape of an alert.
type AlertDTO struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	RiskLevel string     `json:"risk_level"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Active    bool       `json:"active"`
}

// MyAlertDTO is an alert in the management listing, annotated with the
// comma-joined names of the caller's areas it targets.
type MyAlertDTO struct {
	AlertDTO
	CommuneNames string `json:"commune_names,omitempty"`
	EPCINames    string `json:"epci_names,omitempty"`
	RegionNames  string `json:"region_names,omitempty"`
}

// MatchedAlertDTO is an active alert matched to a checked location,
// annotated with the containment level that matched.
type MatchedAlertDTO struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	RiskLevel  string `json:"risk_level"`
	SourceType string `json:"source_type"`
}
