package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"geoshare/internal/domain/session"
	"geoshare/internal/infrastructure/persistence/models"
	"geoshare/internal/shared/db"
	apperrors "geoshare/internal/shared/errors"
)

// SessionRepository looks up opaque access tokens.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*session.Session, error) {
	var row models.SessionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("token = ?", token).First(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &session.Session{
		Token:     row.Token,
		UserID:    row.UserID,
		UserType:  row.UserType,
		ExpiresAt: row.ExpiresAt,
	}, nil
}
