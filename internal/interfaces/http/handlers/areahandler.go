package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geoshare/internal/application/area/usecases"
	"geoshare/internal/shared/logger"
	"geoshare/internal/shared/utils"
)

type AreaHandler struct {
	listResponsibleUC usecases.ListResponsibleAreasExecutor
	logger            logger.Interface
}

func NewAreaHandler(listResponsibleUC usecases.ListResponsibleAreasExecutor) *AreaHandler {
	return &AreaHandler{
		listResponsibleUC: listResponsibleUC,
		logger:            logger.NewLogger(),
	}
}

// ListResponsibleAreas returns the caller's full responsibility closure,
// grouped by level and sorted by name.
func (h *AreaHandler) ListResponsibleAreas(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listResponsibleUC.Execute(c.Request.Context(), usecases.ListResponsibleAreasQuery{Identity: identity})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
