package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"geoshare/internal/application/alert/usecases"
	"geoshare/internal/domain/authorization"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
	"geoshare/internal/shared/utils"
)

type AlertHandler struct {
	createAlertUC  usecases.CreateAlertExecutor
	deleteAlertUC  usecases.DeleteAlertExecutor
	listMyAlertsUC usecases.ListMyAlertsExecutor
	checkAlertsUC  usecases.CheckAlertsExecutor
	logger         logger.Interface
}

func NewAlertHandler(
	createAlertUC usecases.CreateAlertExecutor,
	deleteAlertUC usecases.DeleteAlertExecutor,
	listMyAlertsUC usecases.ListMyAlertsExecutor,
	checkAlertsUC usecases.CheckAlertsExecutor,
) *AlertHandler {
	return &AlertHandler{
		createAlertUC:  createAlertUC,
		deleteAlertUC:  deleteAlertUC,
		listMyAlertsUC: listMyAlertsUC,
		checkAlertsUC:  checkAlertsUC,
		logger:         logger.NewLogger(),
	}
}

type CreateAlertRequest struct {
	Title     string     `json:"title" binding:"required" validate:"required,min=1,max=200"`
	Message   string     `json:"message" validate:"max=5000"`
	RiskLevel string     `json:"risk_level" binding:"required" validate:"required,oneof=JAUNE ORANGE ROUGE"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time"`
	Communes  []uint     `json:"commune_ids"`
	EPCIs     []uint     `json:"epci_ids"`
	Regions   []uint     `json:"region_ids"`
}

type CheckAlertsRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

func (h *AlertHandler) CreateAlert(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create alert", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateAlertCommand{
		Identity:  identity,
		Title:     req.Title,
		Message:   req.Message,
		RiskLevel: req.RiskLevel,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Targets: authorization.TargetAreas{
			CommuneIDs: req.Communes,
			EPCIIDs:    req.EPCIs,
			RegionIDs:  req.Regions,
		},
	}

	result, err := h.createAlertUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":         result.AlertID,
		"created_at": result.CreatedAt,
	}, "Alert created successfully")
}

func (h *AlertHandler) DeleteAlert(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	alertID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteAlertCommand{UserID: identity.ID, AlertID: alertID}
	if err := h.deleteAlertUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *AlertHandler) ListMyAlerts(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	alerts, err := h.listMyAlertsUC.Execute(c.Request.Context(), usecases.ListMyAlertsQuery{UserID: identity.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"alerts": alerts})
}

// CheckAlerts is the public, fail-open endpoint: a location the service
// cannot resolve yields an empty degraded result, never an error.
func (h *AlertHandler) CheckAlerts(c *gin.Context) {
	var req CheckAlertsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for check alerts", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.checkAlertsUC.Execute(c.Request.Context(), usecases.CheckAlertsQuery{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	payload := gin.H{"alerts": result.Alerts}
	if result.Degraded {
		payload["degraded"] = true
		payload["reason"] = result.Reason
	}
	utils.SuccessResponse(c, http.StatusOK, "", payload)
}
