package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"geoshare/internal/shared/constants"
	"geoshare/internal/shared/errors"
)

// ParseUintParam parses a numeric path parameter into a uint.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(value), nil
}

// GetTokenFromCookie returns the named cookie value, or "" when absent.
func GetTokenFromCookie(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}

// CurrentUserID returns the authenticated user id stored by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, error) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, errors.NewUnauthorizedError("User not authenticated")
	}
	userID, ok := value.(uint)
	if !ok {
		return 0, errors.NewInternalError("Internal error")
	}
	return userID, nil
}

// CurrentUserType returns the user-type classification stored by the auth middleware.
func CurrentUserType(c *gin.Context) (string, error) {
	value, exists := c.Get(constants.ContextKeyUserType)
	if !exists {
		return "", errors.NewUnauthorizedError("User not authenticated")
	}
	userType, ok := value.(string)
	if !ok {
		return "", errors.NewInternalError("Internal error")
	}
	return userType, nil
}
