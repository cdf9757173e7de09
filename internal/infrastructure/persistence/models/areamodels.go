// Package models holds the gorm persistence models, the anti-corruption
// layer between the domain entities and the database schema.
package models

import (
	"geoshare/internal/shared/constants"
)

// RegionModel is the top level of the territorial containment forest.
type RegionModel struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"not null;size:100;index"`
}

func (RegionModel) TableName() string {
	return constants.TableRegions
}

// EPCIModel is an intercommunal grouping; RegionID is nullable because a
// few groupings sit outside any region in the reference data.
type EPCIModel struct {
	ID       uint   `gorm:"primarykey"`
	Name     string `gorm:"not null;size:150"`
	RegionID *uint  `gorm:"index"`
}

func (EPCIModel) TableName() string {
	return constants.TableEPCIs
}

// CommuneModel is the leaf level; EPCIID is nullable for communes outside
// any grouping.
type CommuneModel struct {
	ID         uint   `gorm:"primarykey"`
	Name       string `gorm:"not null;size:150"`
	PostalCode string `gorm:"not null;size:10;index"`
	EPCIID     *uint  `gorm:"index"`
}

func (CommuneModel) TableName() string {
	return constants.TableCommunes
}
