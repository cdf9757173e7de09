package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshare/internal/domain/area"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/user"
	"geoshare/internal/shared/constants"
	"geoshare/internal/shared/logger"
)

type stubLogger struct{}

func (s *stubLogger) Debug(msg string, args ...any)                   {}
func (s *stubLogger) Info(msg string, args ...any)                    {}
func (s *stubLogger) Warn(msg string, args ...any)                    {}
func (s *stubLogger) Error(msg string, args ...any)                   {}
func (s *stubLogger) With(args ...any) logger.Interface               { return s }
func (s *stubLogger) Named(name string) logger.Interface              { return s }
func (s *stubLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (s *stubLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (s *stubLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (s *stubLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type stubAreaRepository struct {
	epcisByRegion  map[uint][]uint
	communesByEPCI map[uint][]uint
	regions        map[uint]string
	epcis          map[uint]string
	communes       map[uint]string
}

func (s *stubAreaRepository) EPCIIDsByRegionIDs(_ context.Context, regionIDs []uint) ([]uint, error) {
	var out []uint
	for _, id := range regionIDs {
		out = append(out, s.epcisByRegion[id]...)
	}
	return out, nil
}

func (s *stubAreaRepository) CommuneIDsByEPCIIDs(_ context.Context, epciIDs []uint) ([]uint, error) {
	var out []uint
	for _, id := range epciIDs {
		out = append(out, s.communesByEPCI[id]...)
	}
	return out, nil
}

func (s *stubAreaRepository) RegionsByIDs(_ context.Context, ids []uint) ([]area.Region, error) {
	var out []area.Region
	for _, id := range ids {
		out = append(out, area.Region{ID: id, Name: s.regions[id]})
	}
	return out, nil
}

func (s *stubAreaRepository) EPCIsByIDs(_ context.Context, ids []uint) ([]area.EPCI, error) {
	var out []area.EPCI
	for _, id := range ids {
		out = append(out, area.EPCI{ID: id, Name: s.epcis[id]})
	}
	return out, nil
}

func (s *stubAreaRepository) CommunesByIDs(_ context.Context, ids []uint) ([]area.Commune, error) {
	var out []area.Commune
	for _, id := range ids {
		out = append(out, area.Commune{ID: id, Name: s.communes[id]})
	}
	return out, nil
}

func (s *stubAreaRepository) CommunesByPostalCode(_ context.Context, _ string) ([]area.Commune, error) {
	return nil, nil
}

func (s *stubAreaRepository) HierarchyForCommune(_ context.Context, _ uint) (uint, uint, error) {
	return 0, 0, nil
}

func (s *stubAreaRepository) FindRegionByNameLike(_ context.Context, _ string) (*area.Region, error) {
	return nil, nil
}

type stubAssignments struct {
	rows []authorization.Assignment
}

func (s *stubAssignments) FindByUserID(_ context.Context, _ uint) ([]authorization.Assignment, error) {
	return s.rows, nil
}

func (s *stubAssignments) CreateForInfrastructure(_ context.Context, _ uint, _ string) error {
	return nil
}

func (s *stubAssignments) DeleteForInfrastructure(_ context.Context, _ string) error {
	return nil
}

func TestListResponsibleAreas_CascadeWithNamesSorted(t *testing.T) {
	repo := &stubAreaRepository{
		epcisByRegion:  map[uint][]uint{7: {3}},
		communesByEPCI: map[uint][]uint{3: {101, 102}},
		regions:        map[uint]string{7: "Normandie"},
		epcis:          map[uint]string{3: "Caen la Mer"},
		communes:       map[uint]string{101: "Caen", 102: "Bayeux"},
	}
	regionID := uint(7)
	assignments := &stubAssignments{rows: []authorization.Assignment{{UserID: 1, RegionID: &regionID}}}

	uc := NewListResponsibleAreasUseCase(repo, assignments, authorization.NewResolver(repo), &stubLogger{})

	result, err := uc.Execute(context.Background(), ListResponsibleAreasQuery{
		Identity: user.Identity{ID: 1, Type: constants.UserTypeCollectivite},
	})

	require.NoError(t, err)
	assert.Equal(t, constants.UserTypeCollectivite, result.UserType)
	require.Len(t, result.Communes, 2)
	assert.Equal(t, "Bayeux", result.Communes[0].Name, "communes sorted by name")
	assert.Equal(t, "Caen", result.Communes[1].Name)
	require.Len(t, result.EPCIs, 1)
	assert.Equal(t, "Caen la Mer", result.EPCIs[0].Name)
	require.Len(t, result.Regions, 1)
	assert.Equal(t, "Normandie", result.Regions[0].Name)
}

func TestListResponsibleAreas_NoAssignments(t *testing.T) {
	repo := &stubAreaRepository{}
	uc := NewListResponsibleAreasUseCase(repo, &stubAssignments{}, authorization.NewResolver(repo), &stubLogger{})

	result, err := uc.Execute(context.Background(), ListResponsibleAreasQuery{
		Identity: user.Identity{ID: 1, Type: constants.UserTypeParticulier},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Communes)
	assert.Empty(t, result.EPCIs)
	assert.Empty(t, result.Regions)
	assert.NotNil(t, result.Communes, "empty list, not null, on the wire")
}
