package models

import (
	"time"

	"geoshare/internal/shared/constants"
)

// SessionModel maps an opaque access token to a user. Rows are written by
// the account system; this service only reads them.
type SessionModel struct {
	Token     string `gorm:"primarykey;size:128"`
	UserID    uint   `gorm:"not null;index"`
	UserType  string `gorm:"not null;size:20"`
	ExpiresAt *time.Time
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}
