package dto

import "time"

// InfrastructureDTO is the wire shape of a facility.
type InfrastructureDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address,omitempty"`
	Description   string   `json:"description,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	CommuneID     uint     `json:"commune_id"`
	Status        string   `json:"status"`
	Accessibility []string `json:"accessibility,omitempty"`
	GaugeCurrent  uint     `json:"gauge_current"`
	GaugeMax      uint     `json:"gauge_max"`
}

// NearbyInfrastructureDTO is a facility ranked by proximity, with its live
// gauge and rounded availability.
type NearbyInfrastructureDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DistanceKm   float64 `json:"distance_km"`
	GaugeCurrent uint    `json:"gauge_current"`
	GaugeMax     uint    `json:"gauge_max"`
	FreePercent  int     `json:"free_percent"`
}

// OpeningExceptionDTO is a dated override of the weekly pattern.
type OpeningExceptionDTO struct {
	ID        uint      `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Type      string    `json:"type"`
}

// OpeningScheduleDTO is the weekly open days plus dated exceptions, with
// the schedule already resolved for the current business day.
type OpeningScheduleDTO struct {
	WeeklyDays []int                 `json:"weekly_days"`
	OpenToday  bool                  `json:"open_today"`
	Exceptions []OpeningExceptionDTO `json:"exceptions"`
}
