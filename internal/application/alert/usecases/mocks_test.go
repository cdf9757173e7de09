package usecases

import (
	"context"
	"time"

	"geoshare/internal/domain/alert"
	"geoshare/internal/domain/area"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/geocoding"
	"geoshare/internal/shared/logger"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockAlertRepository struct {
	CreateFunc              func(ctx context.Context, a *alert.Alert, targets authorization.TargetAreas) error
	DeleteFunc              func(ctx context.Context, id uint) error
	FindTargetsFunc         func(ctx context.Context, id uint) (authorization.TargetAreas, error)
	ListForAreasFunc        func(ctx context.Context, authorized *authorization.AuthorizedAreas) ([]alert.TargetedAlert, error)
	ListActiveTargetingFunc func(ctx context.Context, communeID, epciID, regionID uint, now time.Time) ([]alert.MatchedAlert, error)
}

func (m *mockAlertRepository) Create(ctx context.Context, a *alert.Alert, targets authorization.TargetAreas) error {
	return m.CreateFunc(ctx, a, targets)
}

func (m *mockAlertRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockAlertRepository) FindTargets(ctx context.Context, id uint) (authorization.TargetAreas, error) {
	return m.FindTargetsFunc(ctx, id)
}

func (m *mockAlertRepository) ListForAreas(ctx context.Context, authorized *authorization.AuthorizedAreas) ([]alert.TargetedAlert, error) {
	return m.ListForAreasFunc(ctx, authorized)
}

func (m *mockAlertRepository) ListActiveTargeting(ctx context.Context, communeID, epciID, regionID uint, now time.Time) ([]alert.MatchedAlert, error) {
	return m.ListActiveTargetingFunc(ctx, communeID, epciID, regionID, now)
}

type mockAssignmentRepository struct {
	FindByUserIDFunc func(ctx context.Context, userID uint) ([]authorization.Assignment, error)
}

func (m *mockAssignmentRepository) FindByUserID(ctx context.Context, userID uint) ([]authorization.Assignment, error) {
	return m.FindByUserIDFunc(ctx, userID)
}

func (m *mockAssignmentRepository) CreateForInfrastructure(ctx context.Context, userID uint, infrastructureID string) error {
	return nil
}

func (m *mockAssignmentRepository) DeleteForInfrastructure(ctx context.Context, infrastructureID string) error {
	return nil
}

// mockHierarchy is a static containment forest for resolver wiring.
type mockHierarchy struct {
	epcisByRegion  map[uint][]uint
	communesByEPCI map[uint][]uint
}

func (m *mockHierarchy) EPCIIDsByRegionIDs(_ context.Context, regionIDs []uint) ([]uint, error) {
	var out []uint
	for _, id := range regionIDs {
		out = append(out, m.epcisByRegion[id]...)
	}
	return out, nil
}

func (m *mockHierarchy) CommuneIDsByEPCIIDs(_ context.Context, epciIDs []uint) ([]uint, error) {
	var out []uint
	for _, id := range epciIDs {
		out = append(out, m.communesByEPCI[id]...)
	}
	return out, nil
}

type mockGeocoder struct {
	ReverseFunc func(ctx context.Context, lat, lon float64) (*geocoding.Location, error)
}

func (m *mockGeocoder) Reverse(ctx context.Context, lat, lon float64) (*geocoding.Location, error) {
	return m.ReverseFunc(ctx, lat, lon)
}

type mockAreaRepository struct {
	mockHierarchy

	RegionsByIDsFunc         func(ctx context.Context, ids []uint) ([]area.Region, error)
	EPCIsByIDsFunc           func(ctx context.Context, ids []uint) ([]area.EPCI, error)
	CommunesByIDsFunc        func(ctx context.Context, ids []uint) ([]area.Commune, error)
	CommunesByPostalCodeFunc func(ctx context.Context, postalCode string) ([]area.Commune, error)
	HierarchyForCommuneFunc  func(ctx context.Context, communeID uint) (uint, uint, error)
	FindRegionByNameLikeFunc func(ctx context.Context, fragment string) (*area.Region, error)
}

func (m *mockAreaRepository) RegionsByIDs(ctx context.Context, ids []uint) ([]area.Region, error) {
	return m.RegionsByIDsFunc(ctx, ids)
}

func (m *mockAreaRepository) EPCIsByIDs(ctx context.Context, ids []uint) ([]area.EPCI, error) {
	return m.EPCIsByIDsFunc(ctx, ids)
}

func (m *mockAreaRepository) CommunesByIDs(ctx context.Context, ids []uint) ([]area.Commune, error) {
	return m.CommunesByIDsFunc(ctx, ids)
}

func (m *mockAreaRepository) CommunesByPostalCode(ctx context.Context, postalCode string) ([]area.Commune, error) {
	return m.CommunesByPostalCodeFunc(ctx, postalCode)
}

func (m *mockAreaRepository) HierarchyForCommune(ctx context.Context, communeID uint) (uint, uint, error) {
	return m.HierarchyForCommuneFunc(ctx, communeID)
}

func (m *mockAreaRepository) FindRegionByNameLike(ctx context.Context, fragment string) (*area.Region, error) {
	return m.FindRegionByNameLikeFunc(ctx, fragment)
}
