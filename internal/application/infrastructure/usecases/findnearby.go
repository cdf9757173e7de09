package usecases

import (
	"context"
	"math"
	"sort"

	"geoshare/internal/application/infrastructure/dto"
	"geoshare/internal/domain/infrastructure"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/geo"
	"geoshare/internal/shared/logger"
)

const (
	// nearbyRadiusKm is the hard cutoff beyond which facilities are never
	// returned, regardless of availability.
	nearbyRadiusKm = 50.0
	// nearbyMaxResults caps the response size.
	nearbyMaxResults = 100
)

type FindNearbyQuery struct {
	Latitude     float64
	Longitude    float64
	MinFreeRatio float64
}

// FindNearbyUseCase ranks facilities around a point by distance, keeping
// only those with enough free capacity right now.
type FindNearbyUseCase struct {
	infraRepo infrastructure.Repository
	logger    logger.Interface
}

func NewFindNearbyUseCase(infraRepo infrastructure.Repository, logger logger.Interface) *FindNearbyUseCase {
	return &FindNearbyUseCase{infraRepo: infraRepo, logger: logger}
}

func (uc *FindNearbyUseCase) Execute(ctx context.Context, query FindNearbyQuery) ([]dto.NearbyInfrastructureDTO, error) {
	if query.Latitude < -90 || query.Latitude > 90 || query.Longitude < -180 || query.Longitude > 180 {
		return nil, errors.NewValidationError("coordinates out of range")
	}

	minRatio := math.Min(math.Max(query.MinFreeRatio, 0), 1)

	candidates, err := uc.infraRepo.ListCandidates(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list nearby candidates", "error", err)
		return nil, err
	}

	results := make([]dto.NearbyInfrastructureDTO, 0, len(candidates))
	for _, c := range candidates {
		if !c.Infrastructure.HasCoordinates() || c.Gauge.Max == 0 {
			continue
		}
		if c.Gauge.FreeRatio() < minRatio {
			continue
		}

		distance := geo.Distance(query.Latitude, query.Longitude, *c.Infrastructure.Latitude(), *c.Infrastructure.Longitude())
		if distance >= nearbyRadiusKm {
			continue
		}

		results = append(results, dto.NearbyInfrastructureDTO{
			ID:           c.Infrastructure.ID(),
			Name:         c.Infrastructure.Name(),
			Address:      c.Infrastructure.Address(),
			Latitude:     *c.Infrastructure.Latitude(),
			Longitude:    *c.Infrastructure.Longitude(),
			DistanceKm:   distance,
			GaugeCurrent: c.Gauge.Current,
			GaugeMax:     c.Gauge.Max,
			FreePercent:  c.Gauge.FreePercent(),
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].DistanceKm < results[j].DistanceKm })

	if len(results) > nearbyMaxResults {
		results = results[:nearbyMaxResults]
	}
	return results, nil
}
