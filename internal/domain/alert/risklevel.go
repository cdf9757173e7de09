package alert

import "fmt"

// RiskLevel is the ordered severity tag of an alert: JAUNE < ORANGE < ROUGE.
type RiskLevel string

const (
	RiskLevelJaune  RiskLevel = "JAUNE"
	RiskLevelOrange RiskLevel = "ORANGE"
	RiskLevelRouge  RiskLevel = "ROUGE"
)

// NewRiskLevel validates and returns a RiskLevel from its wire string.
func NewRiskLevel(value string) (RiskLevel, error) {
	level := RiskLevel(value)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid risk level %q", value)
	}
	return level, nil
}

// IsValid reports whether the level is one of the three known severities.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelJaune, RiskLevelOrange, RiskLevelRouge:
		return true
	}
	return false
}

// Severity returns the ordering rank of the level. Higher is more severe.
// Ranking must never rely on lexicographic ordering of the wire strings.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskLevelRouge:
		return 3
	case RiskLevelOrange:
		return 2
	case RiskLevelJaune:
		return 1
	}
	return 0
}

// String returns the wire representation.
func (r RiskLevel) String() string {
	return string(r)
}
