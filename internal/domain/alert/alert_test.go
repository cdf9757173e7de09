package alert

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestNewAlert_Valid(t *testing.T) {
	start := time.Now().UTC()
	end := timePtr(start.Add(24 * time.Hour))

	a, err := NewAlert("Vigilance crue", "Montée des eaux attendue.", RiskLevelOrange, start, end)

	require.NoError(t, err)
	assert.Zero(t, a.ID())
	assert.Equal(t, "Vigilance crue", a.Title())
	assert.Equal(t, RiskLevelOrange, a.RiskLevel())
	assert.True(t, a.Active())
	assert.Equal(t, end, a.EndTime())
	assert.False(t, a.CreatedAt().IsZero())
}

func TestNewAlert_OpenEndedWindow(t *testing.T) {
	a, err := NewAlert("Canicule", "", RiskLevelRouge, time.Now().UTC(), nil)

	require.NoError(t, err)
	assert.Nil(t, a.EndTime())
}

func TestNewAlert_Validation(t *testing.T) {
	start := time.Now().UTC()

	tests := []struct {
		name      string
		title     string
		message   string
		riskLevel RiskLevel
		startTime time.Time
		endTime   *time.Time
		wantErr   string
	}{
		{
			name:      "empty title",
			message:   "m",
			riskLevel: RiskLevelJaune,
			startTime: start,
			wantErr:   "title is required",
		},
		{
			name:      "title too long",
			title:     strings.Repeat("a", maxTitleLength+1),
			riskLevel: RiskLevelJaune,
			startTime: start,
			wantErr:   "title exceeds maximum length",
		},
		{
			name:      "message too long",
			title:     "t",
			message:   strings.Repeat("a", maxMessageLength+1),
			riskLevel: RiskLevelJaune,
			startTime: start,
			wantErr:   "message exceeds maximum length",
		},
		{
			name:      "unknown risk level",
			title:     "t",
			riskLevel: RiskLevel("VIOLET"),
			startTime: start,
			wantErr:   "invalid risk level",
		},
		{
			name:      "zero start time",
			title:     "t",
			riskLevel: RiskLevelJaune,
			wantErr:   "start time is required",
		},
		{
			name:      "end before start",
			title:     "t",
			riskLevel: RiskLevelJaune,
			startTime: start,
			endTime:   timePtr(start.Add(-time.Minute)),
			wantErr:   "end time must not precede start time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAlert(tt.title, tt.message, tt.riskLevel, tt.startTime, tt.endTime)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestIsActiveAt covers the window boundaries: started an hour ago with no
// end is active; ended a minute ago is not; starting in an hour is not yet.
func TestIsActiveAt(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		start  time.Time
		end    *time.Time
		active bool
		want   bool
	}{
		{"started, open-ended", now.Add(-time.Hour), nil, true, true},
		{"ended one minute ago", now.Add(-2 * time.Hour), timePtr(now.Add(-time.Minute)), true, false},
		{"starts in one hour", now.Add(time.Hour), nil, true, false},
		{"end exactly now is inclusive", now.Add(-time.Hour), timePtr(now), true, true},
		{"start exactly now is inclusive", now, nil, true, true},
		{"deactivated flag wins", now.Add(-time.Hour), nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ReconstructAlert(1, "t", "m", RiskLevelJaune, tt.start, tt.end, tt.active, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.IsActiveAt(now))
		})
	}
}

func TestSetID(t *testing.T) {
	a, err := NewAlert("t", "m", RiskLevelJaune, time.Now().UTC(), nil)
	require.NoError(t, err)

	require.NoError(t, a.SetID(42))
	assert.Equal(t, uint(42), a.ID())
	assert.Error(t, a.SetID(43))

	b, err := NewAlert("t", "m", RiskLevelJaune, time.Now().UTC(), nil)
	require.NoError(t, err)
	assert.Error(t, b.SetID(0))
}

// TestRiskLevelSeverity pins the ordering rank: the wire strings sort
// differently and must never be compared directly.
func TestRiskLevelSeverity(t *testing.T) {
	assert.Greater(t, RiskLevelRouge.Severity(), RiskLevelOrange.Severity())
	assert.Greater(t, RiskLevelOrange.Severity(), RiskLevelJaune.Severity())
	assert.Zero(t, RiskLevel("").Severity())

	_, err := NewRiskLevel("VERT")
	assert.Error(t, err)

	level, err := NewRiskLevel("ROUGE")
	require.NoError(t, err)
	assert.Equal(t, RiskLevelRouge, level)
}
