package models

import (
	"time"

	"gorm.io/datatypes"

	"geoshare/internal/shared/constants"
)

// InfrastructureModel persists a facility. Accessibility is a JSON list of
// feature tags.
type InfrastructureModel struct {
	ID            string `gorm:"primarykey;size:32"`
	Name          string `gorm:"not null;size:150"`
	Address       string `gorm:"size:255"`
	Description   string `gorm:"size:2000"`
	Latitude      *float64
	Longitude     *float64
	CommuneID     uint   `gorm:"not null;index"`
	Status        string `gorm:"not null;size:20;default:EN_SERVICE"`
	Accessibility datatypes.JSON
	CreatedBy     uint `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (InfrastructureModel) TableName() string {
	return constants.TableInfrastructures
}

// GaugeModel is the live occupancy row of a facility, one per facility.
type GaugeModel struct {
	InfrastructureID string `gorm:"primarykey;size:32"`
	Current          uint   `gorm:"not null;default:0"`
	Max              uint   `gorm:"not null;default:0"`
	UpdatedAt        time.Time
}

func (GaugeModel) TableName() string {
	return constants.TableGauges
}

// OpeningDayModel is one weekly open day of a facility (0 = Sunday).
type OpeningDayModel struct {
	InfrastructureID string `gorm:"primarykey;size:32"`
	Weekday          int    `gorm:"primarykey;autoIncrement:false"`
}

func (OpeningDayModel) TableName() string {
	return constants.TableOpeningDays
}

// OpeningExceptionModel is a dated override of the weekly pattern.
type OpeningExceptionModel struct {
	ID               uint           `gorm:"primarykey"`
	InfrastructureID string         `gorm:"not null;size:32;index"`
	StartDate        datatypes.Date `gorm:"not null"`
	EndDate          datatypes.Date `gorm:"not null"`
	Type             string         `gorm:"not null;size:10"`
}

func (OpeningExceptionModel) TableName() string {
	return constants.TableOpeningExcepts
}
