// Package alert models geo-targeted risk alerts and their active time
// window. An alert is immutable once created: it expires through its time
// window or disappears through deletion, never through update.
package alert

import (
	"fmt"
	"time"
)

const (
	maxTitleLength   = 200
	maxMessageLength = 5000
)

type Alert struct {
	id        uint
	title     string
	message   string
	riskLevel RiskLevel
	startTime time.Time
	endTime   *time.Time
	active    bool
	createdAt time.Time
}

// NewAlert validates and builds an alert pending persistence. The target
// areas live in junction sets owned by the repository; the entity itself
// only carries the window and payload.
func NewAlert(title, message string, riskLevel RiskLevel, startTime time.Time, endTime *time.Time) (*Alert, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(message) > maxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", maxMessageLength)
	}
	if !riskLevel.IsValid() {
		return nil, fmt.Errorf("invalid risk level")
	}
	if startTime.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}
	if endTime != nil && endTime.Before(startTime) {
		return nil, fmt.Errorf("end time must not precede start time")
	}

	return &Alert{
		title:     title,
		message:   message,
		riskLevel: riskLevel,
		startTime: startTime,
		endTime:   endTime,
		active:    true,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructAlert rebuilds an alert from persistence without revalidating
// business rules beyond identity.
func ReconstructAlert(
	id uint,
	title, message string,
	riskLevel RiskLevel,
	startTime time.Time,
	endTime *time.Time,
	active bool,
	createdAt time.Time,
) (*Alert, error) {
	if id == 0 {
		return nil, fmt.Errorf("alert ID cannot be zero")
	}
	if !riskLevel.IsValid() {
		return nil, fmt.Errorf("invalid risk level")
	}

	return &Alert{
		id:        id,
		title:     title,
		message:   message,
		riskLevel: riskLevel,
		startTime: startTime,
		endTime:   endTime,
		active:    active,
		createdAt: createdAt,
	}, nil
}

func (a *Alert) ID() uint             { return a.id }
func (a *Alert) Title() string        { return a.title }
func (a *Alert) Message() string      { return a.message }
func (a *Alert) RiskLevel() RiskLevel { return a.riskLevel }
func (a *Alert) StartTime() time.Time { return a.startTime }
func (a *Alert) EndTime() *time.Time  { return a.endTime }
func (a *Alert) Active() bool         { return a.active }
func (a *Alert) CreatedAt() time.Time { return a.createdAt }

// SetID assigns the persistence identity exactly once.
func (a *Alert) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("alert ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("alert ID cannot be zero")
	}
	a.id = id
	return nil
}

// IsActiveAt reports whether the alert is in effect at the given instant:
// active flag set, started, and not yet past its optional end time.
func (a *Alert) IsActiveAt(t time.Time) bool {
	if !a.active {
		return false
	}
	if a.startTime.After(t) {
		return false
	}
	if a.endTime != nil && a.endTime.Before(t) {
		return false
	}
	return true
}
