package usecases

import (
	"context"

	"geoshare/internal/domain/alert"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
)

type DeleteAlertCommand struct {
	UserID  uint
	AlertID uint
}

// DeleteAlertUseCase removes an alert. Deletion is deliberately looser than
// creation: authority over any one of the alert's target areas suffices,
// so a commune official can retract a department-wide alert touching their
// commune.
type DeleteAlertUseCase struct {
	alertRepo      alert.Repository
	assignmentRepo authorization.AssignmentRepository
	resolver       *authorization.Resolver
	logger         logger.Interface
}

func NewDeleteAlertUseCase(
	alertRepo alert.Repository,
	assignmentRepo authorization.AssignmentRepository,
	resolver *authorization.Resolver,
	logger logger.Interface,
) *DeleteAlertUseCase {
	return &DeleteAlertUseCase{
		alertRepo:      alertRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		logger:         logger,
	}
}

func (uc *DeleteAlertUseCase) Execute(ctx context.Context, cmd DeleteAlertCommand) error {
	uc.logger.Infow("executing delete alert use case", "user_id", cmd.UserID, "alert_id", cmd.AlertID)

	if cmd.AlertID == 0 {
		return errors.NewValidationError("alert ID is required")
	}

	targets, err := uc.alertRepo.FindTargets(ctx, cmd.AlertID)
	if err != nil {
		return err
	}

	if targets.IsEmpty() {
		// An alert row without junction rows violates the schema invariant;
		// it is not deletable through the ordinary authorization path.
		uc.logger.Errorw("alert has no linked areas", "alert_id", cmd.AlertID)
		return errors.NewIntegrityAnomalyError("alert has no linked areas")
	}

	assignments, err := uc.assignmentRepo.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load assignments", "error", err, "user_id", cmd.UserID)
		return err
	}

	authorized, err := uc.resolver.Resolve(ctx, assignments)
	if err != nil {
		uc.logger.Errorw("failed to resolve authorized areas", "error", err, "user_id", cmd.UserID)
		return err
	}

	if !authorized.CanRevoke(targets) {
		uc.logger.Warnw("no overlap between user areas and alert targets", "user_id", cmd.UserID, "alert_id", cmd.AlertID)
		return errors.NewForbiddenError("you are not responsible for any area targeted by this alert")
	}

	if err := uc.alertRepo.Delete(ctx, cmd.AlertID); err != nil {
		uc.logger.Errorw("failed to delete alert", "error", err, "alert_id", cmd.AlertID)
		return err
	}

	uc.logger.Infow("alert deleted", "alert_id", cmd.AlertID, "user_id", cmd.UserID)
	return nil
}
