// Package session models the opaque access tokens issued by the account
// system. This service only looks sessions up; it never creates them.
package session

import (
	"context"
	"time"
)

// Session binds an opaque token to a user identity.
type Session struct {
	Token     string
	UserID    uint
	UserType  string
	ExpiresAt *time.Time
}

// IsExpiredAt reports whether the session has an expiry in the past.
func (s *Session) IsExpiredAt(t time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(t)
}

// Repository looks up sessions by token. Unknown tokens yield a not-found
// error.
type Repository interface {
	FindByToken(ctx context.Context, token string) (*Session, error)
}
