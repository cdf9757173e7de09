package usecases

import (
	"context"

	"geoshare/internal/application/infrastructure/dto"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/infrastructure"
	"geoshare/internal/domain/user"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
)

type CreateInfrastructureCommand struct {
	Identity      user.Identity
	Name          string
	Address       string
	Description   string
	Latitude      *float64
	Longitude     *float64
	CommuneID     uint
	Accessibility []string
	MaxCapacity   uint
}

// CreateInfrastructureUseCase registers a facility and grants its creator
// a direct responsibility assignment, atomically.
type CreateInfrastructureUseCase struct {
	infraRepo      infrastructure.Repository
	assignmentRepo authorization.AssignmentRepository
	tx             TxRunner
	logger         logger.Interface
}

func NewCreateInfrastructureUseCase(
	infraRepo infrastructure.Repository,
	assignmentRepo authorization.AssignmentRepository,
	tx TxRunner,
	logger logger.Interface,
) *CreateInfrastructureUseCase {
	return &CreateInfrastructureUseCase{
		infraRepo:      infraRepo,
		assignmentRepo: assignmentRepo,
		tx:             tx,
		logger:         logger,
	}
}

func (uc *CreateInfrastructureUseCase) Execute(ctx context.Context, cmd CreateInfrastructureCommand) (*dto.InfrastructureDTO, error) {
	uc.logger.Infow("executing create infrastructure use case", "user_id", cmd.Identity.ID, "name", cmd.Name)

	if !cmd.Identity.CanManageInfrastructures() {
		uc.logger.Warnw("user type cannot manage infrastructures", "user_id", cmd.Identity.ID, "user_type", cmd.Identity.Type)
		return nil, errors.NewForbiddenError("this account type cannot manage infrastructures")
	}

	infra, err := infrastructure.NewInfrastructure(
		cmd.Name, cmd.Address, cmd.Description,
		cmd.Latitude, cmd.Longitude,
		cmd.CommuneID, cmd.Accessibility, cmd.Identity.ID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.infraRepo.Create(txCtx, infra, cmd.MaxCapacity); err != nil {
			return err
		}
		return uc.assignmentRepo.CreateForInfrastructure(txCtx, cmd.Identity.ID, infra.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to create infrastructure", "error", err)
		return nil, err
	}

	uc.logger.Infow("infrastructure created", "infrastructure_id", infra.ID(), "commune_id", infra.CommuneID())

	return toInfrastructureDTO(infra, infrastructure.Gauge{Max: cmd.MaxCapacity}), nil
}

func toInfrastructureDTO(infra *infrastructure.Infrastructure, gauge infrastructure.Gauge) *dto.InfrastructureDTO {
	return &dto.InfrastructureDTO{
		ID:            infra.ID(),
		Name:          infra.Name(),
		Address:       infra.Address(),
		Description:   infra.Description(),
		Latitude:      infra.Latitude(),
		Longitude:     infra.Longitude(),
		CommuneID:     infra.CommuneID(),
		Status:        string(infra.Status()),
		Accessibility: infra.Accessibility(),
		GaugeCurrent:  gauge.Current,
		GaugeMax:      gauge.Max,
	}
}
