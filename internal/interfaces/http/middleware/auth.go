package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"geoshare/internal/application/auth/usecases"
	"geoshare/internal/shared/constants"
	"geoshare/internal/shared/logger"
	"geoshare/internal/shared/utils"
)

type AuthMiddleware struct {
	verifySession usecases.VerifySessionExecutor
	logger        logger.Interface
}

func NewAuthMiddleware(verifySession usecases.VerifySessionExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifySession: verifySession,
		logger:        logger,
	}
}

// RequireAuth resolves the session token from the cookie, falling back to
// the Authorization header, and stores the caller's identity in the
// context. Any failure aborts with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, constants.AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}
			token = parts[1]
		}

		identity, err := m.verifySession.Execute(c.Request.Context(), usecases.VerifySessionQuery{Token: token})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, identity.ID)
		c.Set(constants.ContextKeyUserType, identity.Type)

		c.Next()
	}
}
