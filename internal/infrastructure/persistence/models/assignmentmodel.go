package models

import (
	"time"

	"geoshare/internal/shared/constants"
)

// AssignmentModel is a responsibility grant: exactly one of the four
// reference columns is set per row. The schema does not enforce the
// exclusivity; the resolver ignores malformed rows.
type AssignmentModel struct {
	ID               uint    `gorm:"primarykey"`
	UserID           uint    `gorm:"not null;index"`
	RegionID         *uint   `gorm:"index"`
	EPCIID           *uint   `gorm:"index"`
	CommuneID        *uint   `gorm:"index"`
	InfrastructureID *string `gorm:"size:32;index"`
	CreatedAt        time.Time
}

func (AssignmentModel) TableName() string {
	return constants.TableAssignments
}
