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

type UpdateInfrastructureCommand struct {
	Identity         user.Identity
	InfrastructureID string
	Name             string
	Address          string
	Description      string
	Latitude         *float64
	Longitude        *float64
	Accessibility    []string
	Status           string
	MaxCapacity      *uint
}

type UpdateInfrastructureUseCase struct {
	infraRepo      infrastructure.Repository
	assignmentRepo authorization.AssignmentRepository
	resolver       *authorization.Resolver
	logger         logger.Interface
}

func NewUpdateInfrastructureUseCase(
	infraRepo infrastructure.Repository,
	assignmentRepo authorization.AssignmentRepository,
	resolver *authorization.Resolver,
	logger logger.Interface,
) *UpdateInfrastructureUseCase {
	return &UpdateInfrastructureUseCase{
		infraRepo:      infraRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

func (uc *UpdateInfrastructureUseCase) Execute(ctx context.Context, cmd UpdateInfrastructureCommand) (*dto.InfrastructureDTO, error) {
	uc.logger.Infow("executing update infrastructure use case", "user_id", cmd.Identity.ID, "infrastructure_id", cmd.InfrastructureID)

	infra, err := uc.infraRepo.FindByID(ctx, cmd.InfrastructureID)
	if err != nil {
		return nil, err
	}

	if err := authorizeManagement(ctx, cmd.Identity, infra, uc.assignmentRepo, uc.resolver); err != nil {
		uc.logger.Warnw("infrastructure update denied", "user_id", cmd.Identity.ID, "infrastructure_id", cmd.InfrastructureID, "error", err)
		return nil, err
	}

	if err := infra.Update(cmd.Name, cmd.Address, cmd.Description, cmd.Latitude, cmd.Longitude, cmd.Accessibility); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Status != "" {
		if err := infra.SetStatus(infrastructure.Status(cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.infraRepo.Update(ctx, infra); err != nil {
		uc.logger.Errorw("failed to update infrastructure", "error", err, "infrastructure_id", cmd.InfrastructureID)
		return nil, err
	}

	if cmd.MaxCapacity != nil {
		if err := uc.infraRepo.SetGaugeMax(ctx, infra.ID(), *cmd.MaxCapacity); err != nil {
			uc.logger.Errorw("failed to update gauge capacity", "error", err, "infrastructure_id", cmd.InfrastructureID)
			return nil, err
		}
	}

	gauge, err := uc.infraRepo.GaugeFor(ctx, infra.ID())
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("infrastructure updated", "infrastructure_id", infra.ID())
	return toInfrastructureDTO(infra, gauge), nil
}
