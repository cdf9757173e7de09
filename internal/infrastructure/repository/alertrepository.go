package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"geoshare/internal/domain/alert"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/infrastructure/persistence/models"
	"geoshare/internal/shared/db"
	apperrors "geoshare/internal/shared/errors"
	"geoshare/internal/shared/utils/setutil"
)

// AlertRepository persists alerts and their target junction rows.
type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert, targets authorization.TargetAreas) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		model := models.AlertModel{
			Title:     a.Title(),
			Message:   a.Message(),
			RiskLevel: a.RiskLevel().String(),
			StartTime: a.StartTime(),
			EndTime:   a.EndTime(),
			Active:    a.Active(),
			CreatedAt: a.CreatedAt(),
		}
		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to save alert: %w", err)
		}

		for _, communeID := range targets.CommuneIDs {
			if err := tx.Create(&models.AlertCommuneModel{AlertID: model.ID, CommuneID: communeID}).Error; err != nil {
				return fmt.Errorf("failed to link alert to commune %d: %w", communeID, err)
			}
		}
		for _, epciID := range targets.EPCIIDs {
			if err := tx.Create(&models.AlertEPCIModel{AlertID: model.ID, EPCIID: epciID}).Error; err != nil {
				return fmt.Errorf("failed to link alert to EPCI %d: %w", epciID, err)
			}
		}
		for _, regionID := range targets.RegionIDs {
			if err := tx.Create(&models.AlertRegionModel{AlertID: model.ID, RegionID: regionID}).Error; err != nil {
				return fmt.Errorf("failed to link alert to region %d: %w", regionID, err)
			}
		}

		return a.SetID(model.ID)
	})
}

func (r *AlertRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("alert_id = ?", id).Delete(&models.AlertCommuneModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete alert commune links: %w", err)
		}
		if err := tx.Where("alert_id = ?", id).Delete(&models.AlertEPCIModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete alert EPCI links: %w", err)
		}
		if err := tx.Where("alert_id = ?", id).Delete(&models.AlertRegionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete alert region links: %w", err)
		}

		result := tx.Delete(&models.AlertModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete alert: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("alert not found")
		}
		return nil
	})
}

func (r *AlertRepository) FindTargets(ctx context.Context, id uint) (authorization.TargetAreas, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.AlertModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return authorization.TargetAreas{}, fmt.Errorf("failed to check alert existence: %w", err)
	}
	if count == 0 {
		return authorization.TargetAreas{}, apperrors.NewNotFoundError("alert not found")
	}

	var targets authorization.TargetAreas
	if err := tx.Model(&models.AlertCommuneModel{}).
		Where("alert_id = ?", id).
		Pluck("commune_id", &targets.CommuneIDs).Error; err != nil {
		return authorization.TargetAreas{}, fmt.Errorf("failed to load commune targets: %w", err)
	}
	if err := tx.Model(&models.AlertEPCIModel{}).
		Where("alert_id = ?", id).
		Pluck("epci_id", &targets.EPCIIDs).Error; err != nil {
		return authorization.TargetAreas{}, fmt.Errorf("failed to load EPCI targets: %w", err)
	}
	if err := tx.Model(&models.AlertRegionModel{}).
		Where("alert_id = ?", id).
		Pluck("region_id", &targets.RegionIDs).Error; err != nil {
		return authorization.TargetAreas{}, fmt.Errorf("failed to load region targets: %w", err)
	}
	return targets, nil
}

// nameRow carries one matched area name for an alert.
type nameRow struct {
	AlertID uint
	Name    string
}

func (r *AlertRepository) ListForAreas(ctx context.Context, authorized *authorization.AuthorizedAreas) ([]alert.TargetedAlert, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	alertIDs := setutil.NewUintSet()

	communeNames, err := r.matchedNames(tx, matchSpec{
		junction: models.AlertCommuneModel{}.TableName(), fk: "commune_id",
		areaTable: models.CommuneModel{}.TableName(), ids: authorized.Communes,
	})
	if err != nil {
		return nil, err
	}
	epciNames, err := r.matchedNames(tx, matchSpec{
		junction: models.AlertEPCIModel{}.TableName(), fk: "epci_id",
		areaTable: models.EPCIModel{}.TableName(), ids: authorized.EPCIs,
	})
	if err != nil {
		return nil, err
	}
	regionNames, err := r.matchedNames(tx, matchSpec{
		junction: models.AlertRegionModel{}.TableName(), fk: "region_id",
		areaTable: models.RegionModel{}.TableName(), ids: authorized.Regions,
	})
	if err != nil {
		return nil, err
	}

	for id := range communeNames {
		alertIDs.Add(id)
	}
	for id := range epciNames {
		alertIDs.Add(id)
	}
	for id := range regionNames {
		alertIDs.Add(id)
	}
	if alertIDs.IsEmpty() {
		return []alert.TargetedAlert{}, nil
	}

	var rows []models.AlertModel
	if err := tx.Where("id IN ?", alertIDs.ToSortedSlice()).
		Order("start_time DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load alerts: %w", err)
	}

	out := make([]alert.TargetedAlert, 0, len(rows))
	for _, row := range rows {
		a, err := alertToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, alert.TargetedAlert{
			Alert:        a,
			CommuneNames: strings.Join(communeNames[row.ID], ", "),
			EPCINames:    strings.Join(epciNames[row.ID], ", "),
			RegionNames:  strings.Join(regionNames[row.ID], ", "),
		})
	}
	return out, nil
}

type matchSpec struct {
	junction  string
	fk        string
	areaTable string
	ids       *setutil.UintSet
}

// matchedNames maps alert id to the sorted names of its targets within the
// authorized set at one level.
func (r *AlertRepository) matchedNames(tx *gorm.DB, spec matchSpec) (map[uint][]string, error) {
	if spec.ids.IsEmpty() {
		return map[uint][]string{}, nil
	}

	var rows []nameRow
	err := tx.Table(spec.junction+" AS j").
		Select("j.alert_id AS alert_id, a.name AS name").
		Joins(fmt.Sprintf("JOIN %s AS a ON a.id = j.%s", spec.areaTable, spec.fk)).
		Where(fmt.Sprintf("j.%s IN ?", spec.fk), spec.ids.ToSortedSlice()).
		Order("a.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load matched area names: %w", err)
	}

	out := make(map[uint][]string, len(rows))
	for _, row := range rows {
		out[row.AlertID] = append(out[row.AlertID], row.Name)
	}
	return out, nil
}

func (r *AlertRepository) ListActiveTargeting(ctx context.Context, communeID, epciID, regionID uint, now time.Time) ([]alert.MatchedAlert, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	// Commune beats EPCI beats Region when an alert matches at several
	// levels; display precedence only.
	levelByAlert := make(map[uint]alert.MatchLevel)

	if regionID != 0 {
		var ids []uint
		if err := tx.Model(&models.AlertRegionModel{}).
			Where("region_id = ?", regionID).
			Pluck("alert_id", &ids).Error; err != nil {
			return nil, fmt.Errorf("failed to match alerts by region: %w", err)
		}
		for _, id := range ids {
			levelByAlert[id] = alert.MatchLevelRegion
		}
	}
	if epciID != 0 {
		var ids []uint
		if err := tx.Model(&models.AlertEPCIModel{}).
			Where("epci_id = ?", epciID).
			Pluck("alert_id", &ids).Error; err != nil {
			return nil, fmt.Errorf("failed to match alerts by EPCI: %w", err)
		}
		for _, id := range ids {
			levelByAlert[id] = alert.MatchLevelEPCI
		}
	}
	if communeID != 0 {
		var ids []uint
		if err := tx.Model(&models.AlertCommuneModel{}).
			Where("commune_id = ?", communeID).
			Pluck("alert_id", &ids).Error; err != nil {
			return nil, fmt.Errorf("failed to match alerts by commune: %w", err)
		}
		for _, id := range ids {
			levelByAlert[id] = alert.MatchLevelCommune
		}
	}

	if len(levelByAlert) == 0 {
		return []alert.MatchedAlert{}, nil
	}

	alertIDs := make([]uint, 0, len(levelByAlert))
	for id := range levelByAlert {
		alertIDs = append(alertIDs, id)
	}
	sort.Slice(alertIDs, func(i, j int) bool { return alertIDs[i] < alertIDs[j] })

	var rows []models.AlertModel
	if err := tx.Where("id IN ?", alertIDs).
		Where("active = ?", true).
		Where("start_time <= ?", now).
		Where("end_time IS NULL OR end_time >= ?", now).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load active alerts: %w", err)
	}

	out := make([]alert.MatchedAlert, 0, len(rows))
	for _, row := range rows {
		a, err := alertToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, alert.MatchedAlert{Alert: a, Source: levelByAlert[row.ID]})
	}

	// Risk level ranks by severity, never by the wire string; ties break
	// on recency.
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].Alert.RiskLevel().Severity(), out[j].Alert.RiskLevel().Severity()
		if si != sj {
			return si > sj
		}
		return out[i].Alert.StartTime().After(out[j].Alert.StartTime())
	})
	return out, nil
}

func alertToDomain(row models.AlertModel) (*alert.Alert, error) {
	a, err := alert.ReconstructAlert(
		row.ID, row.Title, row.Message,
		alert.RiskLevel(row.RiskLevel),
		row.StartTime, row.EndTime,
		row.Active, row.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild alert %d: %w", row.ID, err)
	}
	return a, nil
}
