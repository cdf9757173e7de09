package usecases

import (
	"context"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"geoshare/internal/domain/alert"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/domain/user"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
)

type CreateAlertCommand struct {
	Identity  user.Identity
	Title     string
	Message   string
	RiskLevel string
	StartTime time.Time
	EndTime   *time.Time
	Targets   authorization.TargetAreas
}

type CreateAlertResult struct {
	AlertID   uint
	CreatedAt time.Time
}

// CreateAlertUseCase publishes an alert over a set of target areas. Every
// requested area must be inside the caller's authorized closure.
type CreateAlertUseCase struct {
	alertRepo      alert.Repository
	assignmentRepo authorization.AssignmentRepository
	resolver       *authorization.Resolver
	sanitizer      *bluemonday.Policy
	logger         logger.Interface
}

func NewCreateAlertUseCase(
	alertRepo alert.Repository,
	assignmentRepo authorization.AssignmentRepository,
	resolver *authorization.Resolver,
	logger logger.Interface,
) *CreateAlertUseCase {
	return &CreateAlertUseCase{
		alertRepo:      alertRepo,
		assignmentRepo: assignmentRepo,
		resolver:       resolver,
		sanitizer:      bluemonday.StrictPolicy(),
		logger:         logger,
	}
}

func (uc *CreateAlertUseCase) Execute(ctx context.Context, cmd CreateAlertCommand) (*CreateAlertResult, error) {
	uc.logger.Infow("executing create alert use case", "user_id", cmd.Identity.ID, "title", cmd.Title)

	if !cmd.Identity.CanCreateAlerts() {
		uc.logger.Warnw("user type cannot create alerts", "user_id", cmd.Identity.ID, "user_type", cmd.Identity.Type)
		return nil, errors.NewForbiddenError("this account type cannot create alerts")
	}

	targets := cmd.Targets.Normalize()
	if targets.IsEmpty() {
		return nil, errors.NewValidationError("at least one target area is required")
	}

	riskLevel, err := alert.NewRiskLevel(cmd.RiskLevel)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	title := uc.sanitizer.Sanitize(cmd.Title)
	message := uc.sanitizer.Sanitize(cmd.Message)

	newAlert, err := alert.NewAlert(title, message, riskLevel, cmd.StartTime, cmd.EndTime)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	assignments, err := uc.assignmentRepo.FindByUserID(ctx, cmd.Identity.ID)
	if err != nil {
		uc.logger.Errorw("failed to load assignments", "error", err, "user_id", cmd.Identity.ID)
		return nil, err
	}

	authorized, err := uc.resolver.Resolve(ctx, assignments)
	if err != nil {
		uc.logger.Errorw("failed to resolve authorized areas", "error", err, "user_id", cmd.Identity.ID)
		return nil, err
	}

	if !authorized.CanTarget(targets) {
		uc.logger.Warnw("alert targets not fully authorized",
			"user_id", cmd.Identity.ID,
			"communes", targets.CommuneIDs,
			"epcis", targets.EPCIIDs,
			"regions", targets.RegionIDs,
		)
		return nil, errors.NewForbiddenError("you are not responsible for all targeted areas")
	}

	if err := uc.alertRepo.Create(ctx, newAlert, targets); err != nil {
		uc.logger.Errorw("failed to persist alert", "error", err)
		return nil, err
	}

	uc.logger.Infow("alert created", "alert_id", newAlert.ID(), "risk_level", riskLevel.String(), "target_count", targets.Count())

	return &CreateAlertResult{
		AlertID:   newAlert.ID(),
		CreatedAt: newAlert.CreatedAt(),
	}, nil
}
