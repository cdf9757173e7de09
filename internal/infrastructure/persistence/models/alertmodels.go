package models

import (
	"time"

	"geoshare/internal/shared/constants"
)

// AlertModel persists an alert row; targets live in the junction models.
type AlertModel struct {
	ID        uint      `gorm:"primarykey"`
	Title     string    `gorm:"not null;size:200"`
	Message   string    `gorm:"type:text"`
	RiskLevel string    `gorm:"not null;size:10;index"`
	StartTime time.Time `gorm:"not null;index"`
	EndTime   *time.Time
	Active    bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
}

func (AlertModel) TableName() string {
	return constants.TableAlerts
}

// AlertCommuneModel links an alert to one targeted commune.
type AlertCommuneModel struct {
	AlertID   uint `gorm:"primarykey;autoIncrement:false"`
	CommuneID uint `gorm:"primarykey;autoIncrement:false;index"`
}

func (AlertCommuneModel) TableName() string {
	return constants.TableAlertCommunes
}

// AlertEPCIModel links an alert to one targeted EPCI.
type AlertEPCIModel struct {
	AlertID uint `gorm:"primarykey;autoIncrement:false"`
	EPCIID  uint `gorm:"primarykey;autoIncrement:false;index"`
}

func (AlertEPCIModel) TableName() string {
	return constants.TableAlertEPCIs
}

// AlertRegionModel links an alert to one targeted region.
type AlertRegionModel struct {
	AlertID  uint `gorm:"primarykey;autoIncrement:false"`
	RegionID uint `gorm:"primarykey;autoIncrement:false;index"`
}

func (AlertRegionModel) TableName() string {
	return constants.TableAlertRegions
}
