package usecases

import (
	"context"
	"time"

	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/infrastructure"
	"geoshare/internal/shared/errors"
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

// passthroughTx runs the callback without a real transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockInfraRepository struct {
	infras     map[string]*infrastructure.Infrastructure
	gauges     map[string]infrastructure.Gauge
	schedules  map[string]*infrastructure.OpeningSchedule
	candidates []infrastructure.Candidate

	createdMax  map[string]uint
	deletedIDs  []string
	nextExcID   uint
	weeklyCalls map[string][]int
}

func newMockInfraRepository() *mockInfraRepository {
	return &mockInfraRepository{
		infras:      make(map[string]*infrastructure.Infrastructure),
		gauges:      make(map[string]infrastructure.Gauge),
		schedules:   make(map[string]*infrastructure.OpeningSchedule),
		createdMax:  make(map[string]uint),
		weeklyCalls: make(map[string][]int),
	}
}

func (m *mockInfraRepository) Create(_ context.Context, infra *infrastructure.Infrastructure, maxCapacity uint) error {
	m.infras[infra.ID()] = infra
	m.gauges[infra.ID()] = infrastructure.Gauge{Max: maxCapacity}
	m.createdMax[infra.ID()] = maxCapacity
	return nil
}

func (m *mockInfraRepository) Update(_ context.Context, infra *infrastructure.Infrastructure) error {
	m.infras[infra.ID()] = infra
	return nil
}

func (m *mockInfraRepository) Delete(_ context.Context, infraID string) error {
	if _, ok := m.infras[infraID]; !ok {
		return errors.NewNotFoundError("infrastructure not found")
	}
	delete(m.infras, infraID)
	m.deletedIDs = append(m.deletedIDs, infraID)
	return nil
}

func (m *mockInfraRepository) FindByID(_ context.Context, infraID string) (*infrastructure.Infrastructure, error) {
	infra, ok := m.infras[infraID]
	if !ok {
		return nil, errors.NewNotFoundError("infrastructure not found")
	}
	return infra, nil
}

func (m *mockInfraRepository) ListCandidates(_ context.Context) ([]infrastructure.Candidate, error) {
	return m.candidates, nil
}

func (m *mockInfraRepository) GaugeFor(_ context.Context, infraID string) (infrastructure.Gauge, error) {
	return m.gauges[infraID], nil
}

func (m *mockInfraRepository) SetGaugeMax(_ context.Context, infraID string, max uint) error {
	g := m.gauges[infraID]
	g.Max = max
	m.gauges[infraID] = g
	return nil
}

func (m *mockInfraRepository) OpeningScheduleFor(_ context.Context, infraID string) (*infrastructure.OpeningSchedule, error) {
	if s, ok := m.schedules[infraID]; ok {
		return s, nil
	}
	return &infrastructure.OpeningSchedule{}, nil
}

func (m *mockInfraRepository) ReplaceWeeklyDays(_ context.Context, infraID string, days []int) error {
	m.weeklyCalls[infraID] = days
	return nil
}

func (m *mockInfraRepository) AddOpeningException(_ context.Context, infraID string, exc *infrastructure.OpeningException) error {
	m.nextExcID++
	exc.ID = m.nextExcID
	s, ok := m.schedules[infraID]
	if !ok {
		s = &infrastructure.OpeningSchedule{}
		m.schedules[infraID] = s
	}
	s.Exceptions = append(s.Exceptions, *exc)
	return nil
}

func (m *mockInfraRepository) DeleteOpeningException(_ context.Context, infraID string, exceptionID uint) error {
	s, ok := m.schedules[infraID]
	if !ok {
		return errors.NewNotFoundError("opening exception not found")
	}
	for i, exc := range s.Exceptions {
		if exc.ID == exceptionID {
			s.Exceptions = append(s.Exceptions[:i], s.Exceptions[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("opening exception not found")
}

type mockAssignments struct {
	rows        []authorization.Assignment
	infraGrants []string
	deletedFor  []string
}

func (m *mockAssignments) FindByUserID(_ context.Context, _ uint) ([]authorization.Assignment, error) {
	return m.rows, nil
}

func (m *mockAssignments) CreateForInfrastructure(_ context.Context, _ uint, infrastructureID string) error {
	m.infraGrants = append(m.infraGrants, infrastructureID)
	return nil
}

func (m *mockAssignments) DeleteForInfrastructure(_ context.Context, infrastructureID string) error {
	m.deletedFor = append(m.deletedFor, infrastructureID)
	return nil
}

type flatHierarchy struct{}

func (flatHierarchy) EPCIIDsByRegionIDs(_ context.Context, _ []uint) ([]uint, error) {
	return nil, nil
}

func (flatHierarchy) CommuneIDsByEPCIIDs(_ context.Context, _ []uint) ([]uint, error) {
	return nil, nil
}

func flatResolver() *authorization.Resolver {
	return authorization.NewResolver(flatHierarchy{})
}

func testTime() time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
}
