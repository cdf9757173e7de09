package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshare/internal/infrastructure/persistence/models"
	apperrors "geoshare/internal/shared/errors"
)

func TestAssignmentRepository_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	communeID := uint(101)
	regionID := uint(7)
	require.NoError(t, db.Create(&models.AssignmentModel{UserID: 1, CommuneID: &communeID}).Error)
	require.NoError(t, db.Create(&models.AssignmentModel{UserID: 1, RegionID: &regionID}).Error)
	require.NoError(t, db.Create(&models.AssignmentModel{UserID: 2, CommuneID: &communeID}).Error)

	rows, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.FindByUserID(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAssignmentRepository_InfrastructureLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateForInfrastructure(ctx, 42, "infra_abc"))
	require.NoError(t, repo.CreateForInfrastructure(ctx, 43, "infra_abc"))

	rows, err := repo.FindByUserID(ctx, 42)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].InfrastructureID)
	assert.Equal(t, "infra_abc", *rows[0].InfrastructureID)

	require.NoError(t, repo.DeleteForInfrastructure(ctx, "infra_abc"))

	rows, err = repo.FindByUserID(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, rows)
	rows, err = repo.FindByUserID(ctx, 43)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSessionRepository_FindByToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	expires := time.Now().UTC().Add(time.Hour)
	require.NoError(t, db.Create(&models.SessionModel{
		Token: "tok_valide", UserID: 42, UserType: "COLLECTIVITE", ExpiresAt: &expires,
	}).Error)

	sess, err := repo.FindByToken(ctx, "tok_valide")
	require.NoError(t, err)
	assert.Equal(t, uint(42), sess.UserID)
	assert.Equal(t, "COLLECTIVITE", sess.UserType)

	_, err = repo.FindByToken(ctx, "tok_inconnu")
	assert.True(t, apperrors.IsNotFoundError(err))
}
