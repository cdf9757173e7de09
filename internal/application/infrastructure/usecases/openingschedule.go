package usecases

import (
	"context"
	"time"

	"geoshare/internal/application/infrastructure/dto"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/infrastructure"
	"geoshare/internal/domain/user"
	"geoshare/internal/shared/biztime"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
)

type GetOpeningScheduleQuery struct {
	Identity         user.Identity
	InfrastructureID string
}

type ReplaceWeeklyDaysCommand struct {
	Identity         user.Identity
	InfrastructureID string
	WeeklyDays       []int
}

type AddOpeningExceptionCommand struct {
	Identity         user.Identity
	InfrastructureID string
	StartDate        string
	EndDate          string
	Type             string
}

type DeleteOpeningExceptionCommand struct {
	Identity         user.Identity
	InfrastructureID string
	ExceptionID      uint
}

// OpeningScheduleUseCase groups the opening-schedule operations of a
// facility; all of them share the facility's management authorization.
type OpeningScheduleUseCase struct {
	infraRepo      infrastructure.Repository
	assignmentRepo authorization.AssignmentRepository
	resolver       *authorization.Resolver
	logger         logger.Interface
}

func NewOpeningScheduleUseCase(
	infraRepo infrastructure.Repository,
	assignmentRepo authorization.AssignmentRepository,
	resolver *authorization.Resolver,
	logger logger.Interface,
) *OpeningScheduleUseCase {
	return &OpeningScheduleUseCase{
		infraRepo:      infraRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

func (uc *OpeningScheduleUseCase) authorize(ctx context.Context, identity user.Identity, infraID string) (*infrastructure.Infrastructure, error) {
	infra, err := uc.infraRepo.FindByID(ctx, infraID)
	if err != nil {
		return nil, err
	}
	if err := authorizeManagement(ctx, identity, infra, uc.assignmentRepo, uc.resolver); err != nil {
		return nil, err
	}
	return infra, nil
}

func (uc *OpeningScheduleUseCase) Get(ctx context.Context, query GetOpeningScheduleQuery) (*dto.OpeningScheduleDTO, error) {
	infra, err := uc.authorize(ctx, query.Identity, query.InfrastructureID)
	if err != nil {
		return nil, err
	}

	schedule, err := uc.infraRepo.OpeningScheduleFor(ctx, infra.ID())
	if err != nil {
		return nil, err
	}

	result := &dto.OpeningScheduleDTO{
		WeeklyDays: schedule.WeeklyDays,
		OpenToday:  schedule.IsOpenOn(biztime.Today()),
		Exceptions: make([]dto.OpeningExceptionDTO, 0, len(schedule.Exceptions)),
	}
	if result.WeeklyDays == nil {
		result.WeeklyDays = []int{}
	}
	for _, exc := range schedule.Exceptions {
		result.Exceptions = append(result.Exceptions, dto.OpeningExceptionDTO{
			ID:        exc.ID,
			StartDate: exc.StartDate,
			EndDate:   exc.EndDate,
			Type:      string(exc.Type),
		})
	}
	return result, nil
}

func (uc *OpeningScheduleUseCase) ReplaceWeeklyDays(ctx context.Context, cmd ReplaceWeeklyDaysCommand) error {
	if err := infrastructure.ValidateWeeklyDays(cmd.WeeklyDays); err != nil {
		return errors.NewValidationError(err.Error())
	}

	infra, err := uc.authorize(ctx, cmd.Identity, cmd.InfrastructureID)
	if err != nil {
		return err
	}

	if err := uc.infraRepo.ReplaceWeeklyDays(ctx, infra.ID(), cmd.WeeklyDays); err != nil {
		uc.logger.Errorw("failed to replace weekly days", "error", err, "infrastructure_id", cmd.InfrastructureID)
		return err
	}

	uc.logger.Infow("weekly opening days replaced", "infrastructure_id", cmd.InfrastructureID, "day_count", len(cmd.WeeklyDays))
	return nil
}

func (uc *OpeningScheduleUseCase) AddException(ctx context.Context, cmd AddOpeningExceptionCommand) (*dto.OpeningExceptionDTO, error) {
	start, err := parseDay(cmd.StartDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid start date, expected YYYY-MM-DD")
	}
	end, err := parseDay(cmd.EndDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid end date, expected YYYY-MM-DD")
	}

	exc, err := infrastructure.NewOpeningException(start, end, infrastructure.ExceptionType(cmd.Type))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	infra, err := uc.authorize(ctx, cmd.Identity, cmd.InfrastructureID)
	if err != nil {
		return nil, err
	}

	if err := uc.infraRepo.AddOpeningException(ctx, infra.ID(), exc); err != nil {
		uc.logger.Errorw("failed to add opening exception", "error", err, "infrastructure_id", cmd.InfrastructureID)
		return nil, err
	}

	uc.logger.Infow("opening exception added", "infrastructure_id", cmd.InfrastructureID, "exception_id", exc.ID, "type", cmd.Type)
	return &dto.OpeningExceptionDTO{
		ID:        exc.ID,
		StartDate: exc.StartDate,
		EndDate:   exc.EndDate,
		Type:      string(exc.Type),
	}, nil
}

func (uc *OpeningScheduleUseCase) DeleteException(ctx context.Context, cmd DeleteOpeningExceptionCommand) error {
	infra, err := uc.authorize(ctx, cmd.Identity, cmd.InfrastructureID)
	if err != nil {
		return err
	}

	if err := uc.infraRepo.DeleteOpeningException(ctx, infra.ID(), cmd.ExceptionID); err != nil {
		return err
	}

	uc.logger.Infow("opening exception deleted", "infrastructure_id", cmd.InfrastructureID, "exception_id", cmd.ExceptionID)
	return nil
}

func parseDay(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
