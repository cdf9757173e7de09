package usecases

import (
	"context"

	"geoshare/internal/application/alert/dto"
	"geoshare/internal/domain/alert"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/shared/logger"
)

type ListMyAlertsQuery struct {
	UserID uint
}

// ListMyAlertsUseCase lists every alert intersecting the caller's
// authorized closure, newest first, with matched area names attached.
type ListMyAlertsUseCase struct {
	alertRepo      alert.Repository
	assignmentRepo authorization.AssignmentRepository
	resolver       *authorization.Resolver
	logger         logger.Interface
}

func NewListMyAlertsUseCase(
	alertRepo alert.Repository,
	assignmentRepo authorization.AssignmentRepository,
	resolver *authorization.Resolver,
	logger logger.Interface,
) *ListMyAlertsUseCase {
	return &ListMyAlertsUseCase{
		alertRepo:      alertRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

func (uc *ListMyAlertsUseCase) Execute(ctx context.Context, query ListMyAlertsQuery) ([]dto.MyAlertDTO, error) {
	assignments, err := uc.assignmentRepo.FindByUserID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load assignments", "error", err, "user_id", query.UserID)
		return nil, err
	}

	authorized, err := uc.resolver.Resolve(ctx, assignments)
	if err != nil {
		uc.logger.Errorw("failed to resolve authorized areas", "error", err, "user_id", query.UserID)
		return nil, err
	}

	if !authorized.HasAreaAuthority() {
		return []dto.MyAlertDTO{}, nil
	}

	targeted, err := uc.alertRepo.ListForAreas(ctx, authorized)
	if err != nil {
		uc.logger.Errorw("failed to list alerts for areas", "error", err, "user_id", query.UserID)
		return nil, err
	}

	result := make([]dto.MyAlertDTO, 0, len(targeted))
	for _, t := range targeted {
		result = append(result, dto.MyAlertDTO{
			AlertDTO: dto.AlertDTO{
				ID:        t.Alert.ID(),
				Title:     t.Alert.Title(),
				Message:   t.Alert.Message(),
				RiskLevel: t.Alert.RiskLevel().String(),
				StartTime: t.Alert.StartTime(),
				EndTime:   t.Alert.EndTime(),
				Active:    t.Alert.Active(),
			},
			CommuneNames: t.CommuneNames,
			EPCINames:    t.EPCINames,
			RegionNames:  t.RegionNames,
		})
	}
	return result, nil
}
