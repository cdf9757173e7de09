package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshare/internal/domain/alert"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/infrastructure/persistence/models"
	apperrors "geoshare/internal/shared/errors"
)

func newAlert(t *testing.T, title string, level alert.RiskLevel, start time.Time, end *time.Time) *alert.Alert {
	t.Helper()
	a, err := alert.NewAlert(title, "message", level, start, end)
	require.NoError(t, err)
	return a
}

func createAlert(t *testing.T, repo *AlertRepository, a *alert.Alert, targets authorization.TargetAreas) uint {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), a, targets))
	require.NotZero(t, a.ID())
	return a.ID()
}

func TestAlertRepository_CreateAndFindTargets(t *testing.T) {
	db := setupTestDB(t)
	seedNormandy(t, db)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := newAlert(t, "Vigilance crue", alert.RiskLevelOrange, time.Now().UTC(), nil)
	id := createAlert(t, repo, a, authorization.TargetAreas{
		CommuneIDs: []uint{101, 102},
		EPCIIDs:    []uint{3},
		RegionIDs:  []uint{7},
	})

	targets, err := repo.FindTargets(ctx, id)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{101, 102}, targets.CommuneIDs)
	assert.Equal(t, []uint{3}, targets.EPCIIDs)
	assert.Equal(t, []uint{7}, targets.RegionIDs)

	_, err = repo.FindTargets(ctx, 9999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAlertRepository_DeleteCascadesJunctions(t *testing.T) {
	db := setupTestDB(t)
	seedNormandy(t, db)
	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := newAlert(t, "t", alert.RiskLevelJaune, time.Now().UTC(), nil)
	id := createAlert(t, repo, a, authorization.TargetAreas{CommuneIDs: []uint{101}})

	require.NoError(t, repo.Delete(ctx, id))

	var count int64
	require.NoError(t, db.Model(&models.AlertCommuneModel{}).Where("alert_id = ?", id).Count(&count).Error)
	assert.Zero(t, count)

	err := repo.Delete(ctx, id)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAlertRepository_ListActiveTargeting(t *testing.T) {
	db := setupTestDB(t)
	seedNormandy(t, db)
	repo := NewAlertRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	hourAgo := now.Add(-time.Hour)
	minuteAgo := now.Add(-time.Minute)
	dayAgo := now.Add(-24 * time.Hour)

	// Active, targeting the commune directly.
	onCommune := newAlert(t, "commune", alert.RiskLevelJaune, hourAgo, nil)
	createAlert(t, repo, onCommune, authorization.TargetAreas{CommuneIDs: []uint{101}})

	// Active and more severe, via the region; started earlier.
	onRegion := newAlert(t, "region", alert.RiskLevelRouge, dayAgo, nil)
	createAlert(t, repo, onRegion, authorization.TargetAreas{RegionIDs: []uint{7}})

	// Same severity as the commune alert but more recent, via the EPCI.
	onEPCI := newAlert(t, "epci", alert.RiskLevelJaune, minuteAgo, nil)
	createAlert(t, repo, onEPCI, authorization.TargetAreas{EPCIIDs: []uint{3}})

	// Expired a minute ago.
	expired := newAlert(t, "expired", alert.RiskLevelRouge, dayAgo, &minuteAgo)
	createAlert(t, repo, expired, authorization.TargetAreas{CommuneIDs: []uint{101}})

	// Not started yet.
	future := newAlert(t, "future", alert.RiskLevelRouge, now.Add(time.Hour), nil)
	createAlert(t, repo, future, authorization.TargetAreas{CommuneIDs: []uint{101}})

	// Targets a different commune entirely.
	elsewhere := newAlert(t, "elsewhere", alert.RiskLevelRouge, hourAgo, nil)
	createAlert(t, repo, elsewhere, authorization.TargetAreas{CommuneIDs: []uint{102}})

	matched, err := repo.ListActiveTargeting(ctx, 101, 3, 7, now)
	require.NoError(t, err)
	require.Len(t, matched, 3)

	// Severity first (ROUGE before JAUNE), then recency within a level.
	assert.Equal(t, "region", matched[0].Alert.Title())
	assert.Equal(t, alert.MatchLevelRegion, matched[0].Source)
	assert.Equal(t, "epci", matched[1].Alert.Title())
	assert.Equal(t, alert.MatchLevelEPCI, matched[1].Source)
	assert.Equal(t, "commune", matched[2].Alert.Title())
	assert.Equal(t, alert.MatchLevelCommune, matched[2].Source)
}

func TestAlertRepository_ListActiveTargeting_Sentinels(t *testing.T) {
	db := setupTestDB(t)
	seedNormandy(t, db)
	repo := NewAlertRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	a := newAlert(t, "t", alert.RiskLevelJaune, now.Add(-time.Hour), nil)
	createAlert(t, repo, a, authorization.TargetAreas{CommuneIDs: []uint{101}})

	// All-zero sentinels match nothing, even though an alert exists.
	matched, err := repo.ListActiveTargeting(ctx, 0, 0, 0, now)
	require.NoError(t, err)
	assert.Empty(t, matched)

	// Region-only resolution misses commune-targeted alerts.
	matched, err = repo.ListActiveTargeting(ctx, 0, 0, 7, now)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestAlertRepository_CommunePrecedenceOverRegion(t *testing.T) {
	db := setupTestDB(t)
	seedNormandy(t, db)
	repo := NewAlertRepository(db)
	now := time.Now().UTC()

	both := newAlert(t, "both levels", alert.RiskLevelOrange, now.Add(-time.Hour), nil)
	createAlert(t, repo, both, authorization.TargetAreas{CommuneIDs: []uint{101}, RegionIDs: []uint{7}})

	matched, err := repo.ListActiveTargeting(context.Background(), 101, 3, 7, now)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, alert.MatchLevelCommune, matched[0].Source)
}

func TestAlertRepository_ListForAreas(t *testing.T) {
	db := setupTestDB(t)
	seedNormandy(t, db)
	repo := NewAlertRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	older := newAlert(t, "older", alert.RiskLevelJaune, now.Add(-2*time.Hour), nil)
	createAlert(t, repo, older, authorization.TargetAreas{CommuneIDs: []uint{101, 102}})

	newer := newAlert(t, "newer", alert.RiskLevelRouge, now.Add(-time.Hour), nil)
	createAlert(t, repo, newer, authorization.TargetAreas{RegionIDs: []uint{7}})

	foreign := newAlert(t, "foreign", alert.RiskLevelRouge, now, nil)
	createAlert(t, repo, foreign, authorization.TargetAreas{CommuneIDs: []uint{102}})

	authorized := authorization.NewAuthorizedAreas()
	authorized.Communes.Add(101)
	authorized.Regions.Add(7)

	listed, err := repo.ListForAreas(ctx, authorized)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Newest start time first.
	assert.Equal(t, "newer", listed[0].Alert.Title())
	assert.Equal(t, "Normandie", listed[0].RegionNames)
	assert.Empty(t, listed[0].CommuneNames)

	assert.Equal(t, "older", listed[1].Alert.Title())
	// Only the authorized commune shows up in the annotation.
	assert.Equal(t, "Caen", listed[1].CommuneNames)
}

func TestAlertRepository_CreateRollsBackOnBadTarget(t *testing.T) {
	db := setupTestDB(t)
	seedNormandy(t, db)
	repo := NewAlertRepository(db)

	// Duplicated commune target violates the junction primary key; the
	// alert row must not survive the failed transaction.
	a := newAlert(t, "t", alert.RiskLevelJaune, time.Now().UTC(), nil)
	err := repo.Create(context.Background(), a, authorization.TargetAreas{CommuneIDs: []uint{101, 101}})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.AlertModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAlertRepository_FindTargetsToleratesZeroTargetRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAlertRepository(db)

	// A bare alert row with no junctions, as a schema anomaly would leave.
	require.NoError(t, db.Create(&models.AlertModel{Title: "orphan", RiskLevel: "JAUNE", StartTime: time.Now().UTC(), Active: true}).Error)

	var row models.AlertModel
	require.NoError(t, db.First(&row).Error)

	targets, err := repo.FindTargets(context.Background(), row.ID)
	require.NoError(t, err)
	assert.True(t, targets.IsEmpty())
}
