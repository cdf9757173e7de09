package usecases

import (
	"context"

	"geoshare/internal/application/alert/dto"
	"geoshare/internal/domain/alert"
	"geoshare/internal/domain/area"
	"geoshare/internal/domain/geocoding"
	"geoshare/internal/shared/biztime"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
	"geoshare/internal/shared/textnorm"
)

// Degradation reasons carried on a fail-open empty result.
const (
	DegradedGeocodingFailed    = "geocoding_failed"
	DegradedLocationUnresolved = "location_unresolved"
	DegradedNoAdministrative   = "no_administrative_match"
)

type CheckAlertsQuery struct {
	Latitude  float64
	Longitude float64
}

// CheckAlertsResult carries the matched alerts or, when the location could
// not be resolved, an explicit degraded empty outcome. Degraded results are
// never an error to the caller.
type CheckAlertsResult struct {
	Alerts   []dto.MatchedAlertDTO
	Degraded bool
	Reason   string
}

// CheckAlertsUseCase resolves a coordinate pair to an administrative
// location and returns the active alerts targeting it at any containment
// level.
type CheckAlertsUseCase struct {
	geocoder  geocoding.Reverser
	areaRepo  area.Repository
	alertRepo alert.Repository
	logger    logger.Interface
}

func NewCheckAlertsUseCase(
	geocoder geocoding.Reverser,
	areaRepo area.Repository,
	alertRepo alert.Repository,
	logger logger.Interface,
) *CheckAlertsUseCase {
	return &CheckAlertsUseCase{
		geocoder:  geocoder,
		areaRepo:  areaRepo,
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (uc *CheckAlertsUseCase) Execute(ctx context.Context, query CheckAlertsQuery) (*CheckAlertsResult, error) {
	if query.Latitude < -90 || query.Latitude > 90 || query.Longitude < -180 || query.Longitude > 180 {
		return nil, errors.NewValidationError("coordinates out of range")
	}

	location, err := uc.geocoder.Reverse(ctx, query.Latitude, query.Longitude)
	if err != nil {
		uc.logger.Warnw("reverse geocoding failed, returning degraded result",
			"error", err, "lat", query.Latitude, "lon", query.Longitude)
		return degraded(DegradedGeocodingFailed), nil
	}

	if location.PostalCode == "" {
		uc.logger.Warnw("geocoder returned no postal code", "lat", query.Latitude, "lon", query.Longitude)
		return degraded(DegradedLocationUnresolved), nil
	}

	communeID, epciID, regionID, err := uc.resolveAdministrative(ctx, location)
	if err != nil {
		return nil, err
	}
	if communeID == 0 && epciID == 0 && regionID == 0 {
		uc.logger.Infow("no administrative area matched",
			"postal_code", location.PostalCode, "region", location.Region)
		return degraded(DegradedNoAdministrative), nil
	}

	matched, err := uc.alertRepo.ListActiveTargeting(ctx, communeID, epciID, regionID, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to list active alerts", "error", err)
		return nil, err
	}

	alerts := make([]dto.MatchedAlertDTO, 0, len(matched))
	for _, m := range matched {
		alerts = append(alerts, dto.MatchedAlertDTO{
			ID:         m.Alert.ID(),
			Title:      m.Alert.Title(),
			Message:    m.Alert.Message(),
			RiskLevel:  m.Alert.RiskLevel().String(),
			SourceType: string(m.Source),
		})
	}
	return &CheckAlertsResult{Alerts: alerts}, nil
}

// resolveAdministrative maps the geocoded location onto the containment
// forest. A commune must resolve from the postal code first; without one the
// lookup stops and the zero ids match nothing downstream. The region-name
// fallback only repairs a missing region edge of a resolved commune.
func (uc *CheckAlertsUseCase) resolveAdministrative(ctx context.Context, location *geocoding.Location) (communeID, epciID, regionID uint, err error) {
	commune := uc.pickCommune(ctx, location)
	if commune == nil {
		return 0, 0, 0, nil
	}

	communeID = commune.ID
	epciID, regionID, err = uc.areaRepo.HierarchyForCommune(ctx, communeID)
	if err != nil {
		return 0, 0, 0, err
	}

	if regionID == 0 && location.Region != "" {
		region, err := uc.areaRepo.FindRegionByNameLike(ctx, location.Region)
		if err != nil {
			return 0, 0, 0, err
		}
		if region != nil {
			regionID = region.ID
		}
	}

	return communeID, epciID, regionID, nil
}

// pickCommune disambiguates postal codes shared by several communes: an
// accent- and case-insensitive exact match on the geocoded locality wins,
// otherwise the first candidate by id is a documented best effort.
func (uc *CheckAlertsUseCase) pickCommune(ctx context.Context, location *geocoding.Location) *area.Commune {
	candidates, err := uc.areaRepo.CommunesByPostalCode(ctx, location.PostalCode)
	if err != nil {
		uc.logger.Errorw("commune lookup failed", "error", err, "postal_code", location.PostalCode)
		return nil
	}
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return &candidates[0]
	}

	if location.Locality != "" {
		for i := range candidates {
			if textnorm.EqualFold(candidates[i].Name, location.Locality) {
				return &candidates[i]
			}
		}
	}
	return &candidates[0]
}

func degraded(reason string) *CheckAlertsResult {
	return &CheckAlertsResult{Alerts: []dto.MatchedAlertDTO{}, Degraded: true, Reason: reason}
}
