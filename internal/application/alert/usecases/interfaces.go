package usecases

import (
	"context"

	"geoshare/internal/application/alert/dto"
)

type CreateAlertExecutor interface {
	Execute(ctx context.Context, cmd CreateAlertCommand) (*CreateAlertResult, error)
}

type DeleteAlertExecutor interface {
	Execute(ctx context.Context, cmd DeleteAlertCommand) error
}

type ListMyAlertsExecutor interface {
	Execute(ctx context.Context, query ListMyAlertsQuery) ([]dto.MyAlertDTO, error)
}

type CheckAlertsExecutor interface {
	Execute(ctx context.Context, query CheckAlertsQuery) (*CheckAlertsResult, error)
}
