// Package infrastructure models sports facilities: identity, location,
// live capacity gauge and opening schedule.
package infrastructure

import (
	"fmt"
	"time"

	"geoshare/internal/shared/id"
)

const (
	maxNameLength        = 150
	maxAddressLength     = 255
	maxDescriptionLength = 2000
)

// Status is the service state of a facility.
type Status string

const (
	StatusInService    Status = "EN_SERVICE"
	StatusOutOfService Status = "HORS_SERVICE"
)

func (s Status) IsValid() bool {
	return s == StatusInService || s == StatusOutOfService
}

type Infrastructure struct {
	id            string
	name          string
	address       string
	description   string
	latitude      *float64
	longitude     *float64
	communeID     uint
	status        Status
	accessibility []string
	createdBy     uint
	createdAt     time.Time
	updatedAt     time.Time
}

// NewInfrastructure validates and builds a facility with a fresh prefixed
// short id. The gauge starts at zero occupancy and is managed separately.
func NewInfrastructure(name, address, description string, latitude, longitude *float64, communeID uint, accessibility []string, createdBy uint) (*Infrastructure, error) {
	if err := validateFields(name, address, description, latitude, longitude); err != nil {
		return nil, err
	}
	if communeID == 0 {
		return nil, fmt.Errorf("commune is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator is required")
	}

	generated, err := id.GenerateWithPrefix(id.PrefixInfrastructure, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate infrastructure ID: %w", err)
	}

	now := time.Now().UTC()
	return &Infrastructure{
		id:            generated,
		name:          name,
		address:       address,
		description:   description,
		latitude:      latitude,
		longitude:     longitude,
		communeID:     communeID,
		status:        StatusInService,
		accessibility: accessibility,
		createdBy:     createdBy,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructInfrastructure rebuilds a facility from persistence.
func ReconstructInfrastructure(
	infraID, name, address, description string,
	latitude, longitude *float64,
	communeID uint,
	status Status,
	accessibility []string,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Infrastructure, error) {
	if infraID == "" {
		return nil, fmt.Errorf("infrastructure ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	return &Infrastructure{
		id:            infraID,
		name:          name,
		address:       address,
		description:   description,
		latitude:      latitude,
		longitude:     longitude,
		communeID:     communeID,
		status:        status,
		accessibility: accessibility,
		createdBy:     createdBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (i *Infrastructure) ID() string              { return i.id }
func (i *Infrastructure) Name() string            { return i.name }
func (i *Infrastructure) Address() string         { return i.address }
func (i *Infrastructure) Description() string     { return i.description }
func (i *Infrastructure) Latitude() *float64      { return i.latitude }
func (i *Infrastructure) Longitude() *float64     { return i.longitude }
func (i *Infrastructure) CommuneID() uint         { return i.communeID }
func (i *Infrastructure) Status() Status          { return i.status }
func (i *Infrastructure) Accessibility() []string { return i.accessibility }
func (i *Infrastructure) CreatedBy() uint         { return i.createdBy }
func (i *Infrastructure) CreatedAt() time.Time    { return i.createdAt }
func (i *Infrastructure) UpdatedAt() time.Time    { return i.updatedAt }

// HasCoordinates reports whether both latitude and longitude are set.
func (i *Infrastructure) HasCoordinates() bool {
	return i.latitude != nil && i.longitude != nil
}

// Update replaces the mutable descriptive fields.
func (i *Infrastructure) Update(name, address, description string, latitude, longitude *float64, accessibility []string) error {
	if err := validateFields(name, address, description, latitude, longitude); err != nil {
		return err
	}
	i.name = name
	i.address = address
	i.description = description
	i.latitude = latitude
	i.longitude = longitude
	i.accessibility = accessibility
	i.updatedAt = time.Now().UTC()
	return nil
}

// SetStatus switches the service state.
func (i *Infrastructure) SetStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", status)
	}
	i.status = status
	i.updatedAt = time.Now().UTC()
	return nil
}

func validateFields(name, address, description string, latitude, longitude *float64) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	if len(address) > maxAddressLength {
		return fmt.Errorf("address exceeds maximum length of %d characters", maxAddressLength)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if (latitude == nil) != (longitude == nil) {
		return fmt.Errorf("latitude and longitude must be provided together")
	}
	if latitude != nil {
		if *latitude < -90 || *latitude > 90 {
			return fmt.Errorf("latitude out of range")
		}
		if *longitude < -180 || *longitude > 180 {
			return fmt.Errorf("longitude out of range")
		}
	}
	return nil
}
