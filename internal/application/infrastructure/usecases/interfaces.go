package usecases

import (
	"context"

	"geoshare/internal/application/infrastructure/dto"
)

// TxRunner executes a function inside a storage transaction; the callback
// context carries the transaction down to the repositories.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type FindNearbyExecutor interface {
	Execute(ctx context.Context, query FindNearbyQuery) ([]dto.NearbyInfrastructureDTO, error)
}

type CreateInfrastructureExecutor interface {
	Execute(ctx context.Context, cmd CreateInfrastructureCommand) (*dto.InfrastructureDTO, error)
}

type UpdateInfrastructureExecutor interface {
	Execute(ctx context.Context, cmd UpdateInfrastructureCommand) (*dto.InfrastructureDTO, error)
}

type DeleteInfrastructureExecutor interface {
	Execute(ctx context.Context, cmd DeleteInfrastructureCommand) error
}

type OpeningScheduleManager interface {
	Get(ctx context.Context, query GetOpeningScheduleQuery) (*dto.OpeningScheduleDTO, error)
	ReplaceWeeklyDays(ctx context.Context, cmd ReplaceWeeklyDaysCommand) error
	AddException(ctx context.Context, cmd AddOpeningExceptionCommand) (*dto.OpeningExceptionDTO, error)
	DeleteException(ctx context.Context, cmd DeleteOpeningExceptionCommand) error
}
