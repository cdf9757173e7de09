package usecases

import (
	"context"
	"sort"

	"geoshare/internal/application/area/dto"
	"geoshare/internal/domain/area"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/user"
	"geoshare/internal/shared/logger"
)

type ListResponsibleAreasQuery struct {
	Identity user.Identity
}

type ListResponsibleAreasExecutor interface {
	Execute(ctx context.Context, query ListResponsibleAreasQuery) (*dto.ResponsibleAreasDTO, error)
}

// ListResponsibleAreasUseCase resolves the caller's assignment closure and
// returns it with area names attached, per level.
type ListResponsibleAreasUseCase struct {
	areaRepo       area.Repository
	assignmentRepo authorization.AssignmentRepository
	resolver       *authorization.Resolver
	logger         logger.Interface
}

func NewListResponsibleAreasUseCase(
	areaRepo area.Repository,
	assignmentRepo authorization.AssignmentRepository,
	resolver *authorization.Resolver,
	logger logger.Interface,
) *ListResponsibleAreasUseCase {
	return &ListResponsibleAreasUseCase{
		areaRepo:       areaRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

func (uc *ListResponsibleAreasUseCase) Execute(ctx context.Context, query ListResponsibleAreasQuery) (*dto.ResponsibleAreasDTO, error) {
	assignments, err := uc.assignmentRepo.FindByUserID(ctx, query.Identity.ID)
	if err != nil {
		uc.logger.Errorw("failed to load assignments", "error", err, "user_id", query.Identity.ID)
		return nil, err
	}

	authorized, err := uc.resolver.Resolve(ctx, assignments)
	if err != nil {
		uc.logger.Errorw("failed to resolve authorized areas", "error", err, "user_id", query.Identity.ID)
		return nil, err
	}

	result := &dto.ResponsibleAreasDTO{
		UserType: query.Identity.Type,
		Communes: []dto.AreaDTO{},
		EPCIs:    []dto.AreaDTO{},
		Regions:  []dto.AreaDTO{},
	}

	if !authorized.Communes.IsEmpty() {
		communes, err := uc.areaRepo.CommunesByIDs(ctx, authorized.Communes.ToSortedSlice())
		if err != nil {
			return nil, err
		}
		for _, c := range communes {
			result.Communes = append(result.Communes, dto.AreaDTO{ID: c.ID, Name: c.Name})
		}
	}

	if !authorized.EPCIs.IsEmpty() {
		epcis, err := uc.areaRepo.EPCIsByIDs(ctx, authorized.EPCIs.ToSortedSlice())
		if err != nil {
			return nil, err
		}
		for _, e := range epcis {
			result.EPCIs = append(result.EPCIs, dto.AreaDTO{ID: e.ID, Name: e.Name})
		}
	}

	if !authorized.Regions.IsEmpty() {
		regions, err := uc.areaRepo.RegionsByIDs(ctx, authorized.Regions.ToSortedSlice())
		if err != nil {
			return nil, err
		}
		for _, r := range regions {
			result.Regions = append(result.Regions, dto.AreaDTO{ID: r.ID, Name: r.Name})
		}
	}

	sortByName(result.Communes)
	sortByName(result.EPCIs)
	sortByName(result.Regions)

	return result, nil
}

func sortByName(areas []dto.AreaDTO) {
	sort.Slice(areas, func(i, j int) bool { return areas[i].Name < areas[j].Name })
}
