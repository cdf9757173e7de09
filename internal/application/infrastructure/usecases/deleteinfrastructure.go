package usecases

import (
	"context"

	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/infrastructure"
	"geoshare/internal/domain/user"
	"geoshare/internal/shared/logger"
)

type DeleteInfrastructureCommand struct {
	Identity         user.Identity
	InfrastructureID string
}

// DeleteInfrastructureUseCase removes a facility with its gauge, opening
// rows and responsibility assignments, atomically.
type DeleteInfrastructureUseCase struct {
	infraRepo      infrastructure.Repository
	assignmentRepo authorization.AssignmentRepository
	resolver       *authorization.Resolver
	tx             TxRunner
	logger         logger.Interface
}

func NewDeleteInfrastructureUseCase(
	infraRepo infrastructure.Repository,
	assignmentRepo authorization.AssignmentRepository,
	resolver *authorization.Resolver,
	tx TxRunner,
	logger logger.Interface,
) *DeleteInfrastructureUseCase {
	return &DeleteInfrastructureUseCase{
		infraRepo:      infraRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		tx:             tx,
		logger:         logger,
	}
}

func (uc *DeleteInfrastructureUseCase) Execute(ctx context.Context, cmd DeleteInfrastructureCommand) error {
	uc.logger.Infow("executing delete infrastructure use case", "user_id", cmd.Identity.ID, "infrastructure_id", cmd.InfrastructureID)

	infra, err := uc.infraRepo.FindByID(ctx, cmd.InfrastructureID)
	if err != nil {
		return err
	}

	if err := authorizeManagement(ctx, cmd.Identity, infra, uc.assignmentRepo, uc.resolver); err != nil {
		uc.logger.Warnw("infrastructure deletion denied", "user_id", cmd.Identity.ID, "infrastructure_id", cmd.InfrastructureID, "error", err)
		return err
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.DeleteForInfrastructure(txCtx, infra.ID()); err != nil {
			return err
		}
		return uc.infraRepo.Delete(txCtx, infra.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete infrastructure", "error", err, "infrastructure_id", cmd.InfrastructureID)
		return err
	}

	uc.logger.Infow("infrastructure deleted", "infrastructure_id", cmd.InfrastructureID)
	return nil
}
