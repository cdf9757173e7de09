package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshare/internal/domain/authorization"
	"geoshare/internal/shared/errors"
)

func TestDeleteAlertUseCase_AnyOverlapSuffices(t *testing.T) {
	deleted := false
	repo := &mockAlertRepository{
		FindTargetsFunc: func(_ context.Context, id uint) (authorization.TargetAreas, error) {
			return authorization.TargetAreas{CommuneIDs: []uint{101, 102}, RegionIDs: []uint{7}}, nil
		},
		DeleteFunc: func(_ context.Context, id uint) error {
			deleted = true
			return nil
		},
	}

	uc := NewDeleteAlertUseCase(repo, communeOfficial(102), flatResolver(), &mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), DeleteAlertCommand{UserID: 1, AlertID: 9}))
	assert.True(t, deleted)
}

func TestDeleteAlertUseCase_NoOverlapForbidden(t *testing.T) {
	repo := &mockAlertRepository{
		FindTargetsFunc: func(_ context.Context, id uint) (authorization.TargetAreas, error) {
			return authorization.TargetAreas{CommuneIDs: []uint{500}}, nil
		},
	}

	uc := NewDeleteAlertUseCase(repo, communeOfficial(102), flatResolver(), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteAlertCommand{UserID: 1, AlertID: 9})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestDeleteAlertUseCase_ZeroTargetAnomaly(t *testing.T) {
	repo := &mockAlertRepository{
		FindTargetsFunc: func(_ context.Context, id uint) (authorization.TargetAreas, error) {
			return authorization.TargetAreas{}, nil
		},
	}

	uc := NewDeleteAlertUseCase(repo, communeOfficial(102), flatResolver(), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteAlertCommand{UserID: 1, AlertID: 9})
	require.Error(t, err)
	assert.True(t, errors.IsIntegrityAnomalyError(err))
}

func TestDeleteAlertUseCase_UnknownAlert(t *testing.T) {
	repo := &mockAlertRepository{
		FindTargetsFunc: func(_ context.Context, id uint) (authorization.TargetAreas, error) {
			return authorization.TargetAreas{}, errors.NewNotFoundError("alert not found")
		},
	}

	uc := NewDeleteAlertUseCase(repo, communeOfficial(102), flatResolver(), &mockLogger{})

	err := uc.Execute(context.Background(), DeleteAlertCommand{UserID: 1, AlertID: 404})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
