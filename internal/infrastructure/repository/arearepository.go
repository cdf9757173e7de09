// Package repository implements the domain repository interfaces over gorm.
package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"geoshare/internal/domain/area"
	"geoshare/internal/infrastructure/persistence/models"
	"geoshare/internal/shared/db"
)

// AreaRepository reads the territorial reference data. The tables are
// seeded by migrations and never written by this service.
type AreaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

func (r *AreaRepository) EPCIIDsByRegionIDs(ctx context.Context, regionIDs []uint) ([]uint, error) {
	if len(regionIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.EPCIModel{}).
		Where("region_id IN ?", regionIDs).
		Distinct().
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load EPCIs for regions: %w", err)
	}
	return ids, nil
}

func (r *AreaRepository) CommuneIDsByEPCIIDs(ctx context.Context, epciIDs []uint) ([]uint, error) {
	if len(epciIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.CommuneModel{}).
		Where("epci_id IN ?", epciIDs).
		Distinct().
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load communes for EPCIs: %w", err)
	}
	return ids, nil
}

func (r *AreaRepository) RegionsByIDs(ctx context.Context, ids []uint) ([]area.Region, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.RegionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load regions: %w", err)
	}
	out := make([]area.Region, 0, len(rows))
	for _, row := range rows {
		out = append(out, area.Region{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *AreaRepository) EPCIsByIDs(ctx context.Context, ids []uint) ([]area.EPCI, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.EPCIModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load EPCIs: %w", err)
	}
	out := make([]area.EPCI, 0, len(rows))
	for _, row := range rows {
		out = append(out, area.EPCI{ID: row.ID, Name: row.Name, RegionID: row.RegionID})
	}
	return out, nil
}

func (r *AreaRepository) CommunesByIDs(ctx context.Context, ids []uint) ([]area.Commune, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.CommuneModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load communes: %w", err)
	}
	return communesToDomain(rows), nil
}

func (r *AreaRepository) CommunesByPostalCode(ctx context.Context, postalCode string) ([]area.Commune, error) {
	var rows []models.CommuneModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("postal_code = ?", postalCode).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load communes for postal code: %w", err)
	}
	return communesToDomain(rows), nil
}

func (r *AreaRepository) HierarchyForCommune(ctx context.Context, communeID uint) (uint, uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var commune models.CommuneModel
	if err := tx.First(&commune, communeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to load commune: %w", err)
	}
	if commune.EPCIID == nil {
		return 0, 0, nil
	}

	var epci models.EPCIModel
	if err := tx.First(&epci, *commune.EPCIID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to load EPCI: %w", err)
	}

	var regionID uint
	if epci.RegionID != nil {
		regionID = *epci.RegionID
	}
	return epci.ID, regionID, nil
}

func (r *AreaRepository) FindRegionByNameLike(ctx context.Context, fragment string) (*area.Region, error) {
	if fragment == "" {
		return nil, nil
	}
	var row models.RegionModel
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(fragment)+"%").
		Order("id").
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to search region by name: %w", err)
	}
	return &area.Region{ID: row.ID, Name: row.Name}, nil
}

func communesToDomain(rows []models.CommuneModel) []area.Commune {
	out := make([]area.Commune, 0, len(rows))
	for _, row := range rows {
		out = append(out, area.Commune{
			ID:         row.ID,
			Name:       row.Name,
			PostalCode: row.PostalCode,
			EPCIID:     row.EPCIID,
		})
	}
	return out
}
