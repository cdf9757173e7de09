package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"geoshare/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.RegionModel{},
		&models.EPCIModel{},
		&models.CommuneModel{},
		&models.AlertModel{},
		&models.AlertCommuneModel{},
		&models.AlertEPCIModel{},
		&models.AlertRegionModel{},
		&models.InfrastructureModel{},
		&models.GaugeModel{},
		&models.OpeningDayModel{},
		&models.OpeningExceptionModel{},
		&models.AssignmentModel{},
		&models.SessionModel{},
	)
	require.NoError(t, err)

	return db
}

// seedNormandy inserts the reference scenario: region 7 (Normandie)
// containing EPCI 3 (Caen la Mer) containing communes 101 (Caen) and
// 102 (Caen-Nord), both on postal code 14000.
func seedNormandy(t *testing.T, db *gorm.DB) {
	t.Helper()
	regionID := uint(7)
	epciID := uint(3)

	require.NoError(t, db.Create(&models.RegionModel{ID: 7, Name: "Normandie"}).Error)
	require.NoError(t, db.Create(&models.EPCIModel{ID: 3, Name: "Caen la Mer", RegionID: &regionID}).Error)
	require.NoError(t, db.Create(&models.CommuneModel{ID: 101, Name: "Caen", PostalCode: "14000", EPCIID: &epciID}).Error)
	require.NoError(t, db.Create(&models.CommuneModel{ID: 102, Name: "Caen-Nord", PostalCode: "14000", EPCIID: &epciID}).Error)
}

func parseTestDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
