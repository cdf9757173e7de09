package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geoshare/internal/application/auth/usecases"
	"geoshare/internal/shared/constants"
	"geoshare/internal/shared/logger"
	"geoshare/internal/shared/utils"
)

type AuthHandler struct {
	verifySessionUC usecases.VerifySessionExecutor
	logger          logger.Interface
}

func NewAuthHandler(verifySessionUC usecases.VerifySessionExecutor) *AuthHandler {
	return &AuthHandler{
		verifySessionUC: verifySessionUC,
		logger:          logger.NewLogger(),
	}
}

type VerifySessionRequest struct {
	Token string `json:"token"`
}

// VerifySession validates an access token and returns the identity behind
// it. The token may come from the body, the cookie or the Bearer header.
func (h *AuthHandler) VerifySession(c *gin.Context) {
	var req VerifySessionRequest
	_ = c.ShouldBindJSON(&req)

	token := req.Token
	if token == "" {
		token = utils.GetTokenFromCookie(c, constants.AccessTokenCookie)
	}
	if token == "" {
		token = bearerToken(c)
	}

	identity, err := h.verifySessionUC.Execute(c.Request.Context(), usecases.VerifySessionQuery{Token: token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user_id":   identity.ID,
		"user_type": identity.Type,
	})
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > len(prefix) && authHeader[:len(prefix)] == prefix {
		return authHeader[len(prefix):]
	}
	return ""
}
