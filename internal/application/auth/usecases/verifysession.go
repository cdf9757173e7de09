package usecases

import (
	"context"

	"geoshare/internal/domain/session"
	"geoshare/internal/domain/user"
	"geoshare/internal/shared/biztime"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
)

type VerifySessionQuery struct {
	Token string
}

type VerifySessionExecutor interface {
	Execute(ctx context.Context, query VerifySessionQuery) (*user.Identity, error)
}

// VerifySessionUseCase resolves an opaque access token to an identity.
// Missing, unknown and expired tokens all collapse to the same
// unauthorized error so callers cannot probe token validity.
type VerifySessionUseCase struct {
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewVerifySessionUseCase(sessionRepo session.Repository, logger logger.Interface) *VerifySessionUseCase {
	return &VerifySessionUseCase{sessionRepo: sessionRepo, logger: logger}
}

func (uc *VerifySessionUseCase) Execute(ctx context.Context, query VerifySessionQuery) (*user.Identity, error) {
	if query.Token == "" {
		return nil, errors.NewUnauthorizedError("missing access token")
	}

	sess, err := uc.sessionRepo.FindByToken(ctx, query.Token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid access token")
		}
		uc.logger.Errorw("session lookup failed", "error", err)
		return nil, err
	}

	if sess.IsExpiredAt(biztime.NowUTC()) {
		return nil, errors.NewUnauthorizedError("expired access token")
	}

	return &user.Identity{ID: sess.UserID, Type: sess.UserType}, nil
}
