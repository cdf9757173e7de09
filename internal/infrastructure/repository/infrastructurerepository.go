package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"geoshare/internal/domain/infrastructure"
	"geoshare/internal/infrastructure/persistence/models"
	"geoshare/internal/shared/db"
	apperrors "geoshare/internal/shared/errors"
)

// InfrastructureRepository persists facilities, their gauges and opening
// schedules.
type InfrastructureRepository struct {
	db *gorm.DB
}

func NewInfrastructureRepository(db *gorm.DB) *InfrastructureRepository {
	return &InfrastructureRepository{db: db}
}

func (r *InfrastructureRepository) Create(ctx context.Context, infra *infrastructure.Infrastructure, maxCapacity uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		model, err := infraToModel(infra)
		if err != nil {
			return err
		}
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save infrastructure: %w", err)
		}
		gauge := models.GaugeModel{InfrastructureID: infra.ID(), Max: maxCapacity}
		if err := tx.Create(&gauge).Error; err != nil {
			return fmt.Errorf("failed to save gauge: %w", err)
		}
		return nil
	})
}

func (r *InfrastructureRepository) Update(ctx context.Context, infra *infrastructure.Infrastructure) error {
	model, err := infraToModel(infra)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.InfrastructureModel{}).
		Where("id = ?", infra.ID()).
		Select("name", "address", "description", "latitude", "longitude", "status", "accessibility", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update infrastructure: %w", result.Error)
	}
	return nil
}

func (r *InfrastructureRepository) Delete(ctx context.Context, infraID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("infrastructure_id = ?", infraID).Delete(&models.GaugeModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete gauge: %w", err)
		}
		if err := tx.Where("infrastructure_id = ?", infraID).Delete(&models.OpeningDayModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete opening days: %w", err)
		}
		if err := tx.Where("infrastructure_id = ?", infraID).Delete(&models.OpeningExceptionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete opening exceptions: %w", err)
		}

		result := tx.Where("id = ?", infraID).Delete(&models.InfrastructureModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete infrastructure: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("infrastructure not found")
		}
		return nil
	})
}

func (r *InfrastructureRepository) FindByID(ctx context.Context, infraID string) (*infrastructure.Infrastructure, error) {
	var row models.InfrastructureModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", infraID).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("infrastructure not found")
		}
		return nil, fmt.Errorf("failed to load infrastructure: %w", err)
	}
	return infraToDomain(row)
}

func (r *InfrastructureRepository) ListCandidates(ctx context.Context) ([]infrastructure.Candidate, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.InfrastructureModel
	if err := tx.Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load infrastructures: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	var gauges []models.GaugeModel
	if err := tx.Where("infrastructure_id IN ? AND max > 0", ids).
		Find(&gauges).Error; err != nil {
		return nil, fmt.Errorf("failed to load gauges: %w", err)
	}
	gaugeByID := make(map[string]models.GaugeModel, len(gauges))
	for _, g := range gauges {
		gaugeByID[g.InfrastructureID] = g
	}

	out := make([]infrastructure.Candidate, 0, len(rows))
	for _, row := range rows {
		g, ok := gaugeByID[row.ID]
		if !ok {
			continue
		}
		infra, err := infraToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, infrastructure.Candidate{
			Infrastructure: infra,
			Gauge:          infrastructure.Gauge{Current: g.Current, Max: g.Max},
		})
	}
	return out, nil
}

func (r *InfrastructureRepository) GaugeFor(ctx context.Context, infraID string) (infrastructure.Gauge, error) {
	var row models.GaugeModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("infrastructure_id = ?", infraID).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return infrastructure.Gauge{}, nil
		}
		return infrastructure.Gauge{}, fmt.Errorf("failed to load gauge: %w", err)
	}
	return infrastructure.Gauge{Current: row.Current, Max: row.Max}, nil
}

func (r *InfrastructureRepository) SetGaugeMax(ctx context.Context, infraID string, max uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.GaugeModel{}).
		Where("infrastructure_id = ?", infraID).
		Updates(map[string]interface{}{"max": max, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to update gauge capacity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		row := models.GaugeModel{InfrastructureID: infraID, Max: max}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create gauge: %w", err)
		}
	}
	return nil
}

func (r *InfrastructureRepository) OpeningScheduleFor(ctx context.Context, infraID string) (*infrastructure.OpeningSchedule, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var days []int
	if err := tx.Model(&models.OpeningDayModel{}).
		Where("infrastructure_id = ?", infraID).
		Order("weekday").
		Pluck("weekday", &days).Error; err != nil {
		return nil, fmt.Errorf("failed to load weekly days: %w", err)
	}

	var excRows []models.OpeningExceptionModel
	if err := tx.Where("infrastructure_id = ?", infraID).
		Order("id").
		Find(&excRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load opening exceptions: %w", err)
	}

	schedule := &infrastructure.OpeningSchedule{WeeklyDays: days}
	for _, row := range excRows {
		schedule.Exceptions = append(schedule.Exceptions, infrastructure.OpeningException{
			ID:        row.ID,
			StartDate: time.Time(row.StartDate),
			EndDate:   time.Time(row.EndDate),
			Type:      infrastructure.ExceptionType(row.Type),
		})
	}
	return schedule, nil
}

func (r *InfrastructureRepository) ReplaceWeeklyDays(ctx context.Context, infraID string, days []int) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("infrastructure_id = ?", infraID).Delete(&models.OpeningDayModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear weekly days: %w", err)
		}
		for _, day := range days {
			if err := tx.Create(&models.OpeningDayModel{InfrastructureID: infraID, Weekday: day}).Error; err != nil {
				return fmt.Errorf("failed to save weekly day %d: %w", day, err)
			}
		}
		return nil
	})
}

func (r *InfrastructureRepository) AddOpeningException(ctx context.Context, infraID string, exc *infrastructure.OpeningException) error {
	tx := db.GetTxFromContext(ctx, r.db)
	row := models.OpeningExceptionModel{
		InfrastructureID: infraID,
		StartDate:        datatypes.Date(exc.StartDate),
		EndDate:          datatypes.Date(exc.EndDate),
		Type:             string(exc.Type),
	}
	if err := tx.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save opening exception: %w", err)
	}
	exc.ID = row.ID
	return nil
}

func (r *InfrastructureRepository) DeleteOpeningException(ctx context.Context, infraID string, exceptionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("infrastructure_id = ? AND id = ?", infraID, exceptionID).
		Delete(&models.OpeningExceptionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete opening exception: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("opening exception not found")
	}
	return nil
}

func infraToModel(infra *infrastructure.Infrastructure) (*models.InfrastructureModel, error) {
	var accessibility datatypes.JSON
	if len(infra.Accessibility()) > 0 {
		raw, err := json.Marshal(infra.Accessibility())
		if err != nil {
			return nil, fmt.Errorf("failed to encode accessibility: %w", err)
		}
		accessibility = raw
	}
	return &models.InfrastructureModel{
		ID:            infra.ID(),
		Name:          infra.Name(),
		Address:       infra.Address(),
		Description:   infra.Description(),
		Latitude:      infra.Latitude(),
		Longitude:     infra.Longitude(),
		CommuneID:     infra.CommuneID(),
		Status:        string(infra.Status()),
		Accessibility: accessibility,
		CreatedBy:     infra.CreatedBy(),
		CreatedAt:     infra.CreatedAt(),
		UpdatedAt:     infra.UpdatedAt(),
	}, nil
}

func infraToDomain(row models.InfrastructureModel) (*infrastructure.Infrastructure, error) {
	var accessibility []string
	if len(row.Accessibility) > 0 {
		if err := json.Unmarshal(row.Accessibility, &accessibility); err != nil {
			return nil, fmt.Errorf("failed to decode accessibility for %s: %w", row.ID, err)
		}
	}
	infra, err := infrastructure.ReconstructInfrastructure(
		row.ID, row.Name, row.Address, row.Description,
		row.Latitude, row.Longitude,
		row.CommuneID,
		infrastructure.Status(row.Status),
		accessibility,
		row.CreatedBy,
		row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild infrastructure %s: %w", row.ID, err)
	}
	return infra, nil
}
