package migration

import (
	"fmt"

	"gorm.io/gorm"

	"geoshare/internal/infrastructure/persistence/models"
	"geoshare/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the model structs.
// Convenient in development; production uses versioned scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	s.logger.Infow("auto migrate completed", "models_count", len(models))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persisted model.
func AutoMigrateModels() []interface{} {
	return []interface{}{
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
	}
}
