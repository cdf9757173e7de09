package handlers

import (
	"github.com/gin-gonic/gin"

	"geoshare/internal/domain/user"
	"geoshare/internal/shared/utils"
)

// currentIdentity rebuilds the caller's identity from the values the auth
// middleware stored in the context.
func currentIdentity(c *gin.Context) (user.Identity, error) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return user.Identity{}, err
	}
	userType, err := utils.CurrentUserType(c)
	if err != nil {
		return user.Identity{}, err
	}
	return user.Identity{ID: userID, Type: userType}, nil
}
