package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geoshare/internal/application/infrastructure/usecases"
	"geoshare/internal/shared/errors"
	"geoshare/internal/shared/logger"
	"geoshare/internal/shared/utils"
)

type InfrastructureHandler struct {
	createUC   usecases.CreateInfrastructureExecutor
	updateUC   usecases.UpdateInfrastructureExecutor
	deleteUC   usecases.DeleteInfrastructureExecutor
	findNearby usecases.FindNearbyExecutor
	openingUC  usecases.OpeningScheduleManager
	logger     logger.Interface
}

func NewInfrastructureHandler(
	createUC usecases.CreateInfrastructureExecutor,
	updateUC usecases.UpdateInfrastructureExecutor,
	deleteUC usecases.DeleteInfrastructureExecutor,
	findNearby usecases.FindNearbyExecutor,
	openingUC usecases.OpeningScheduleManager,
) *InfrastructureHandler {
	return &InfrastructureHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		findNearby: findNearby,
		openingUC:  openingUC,
		logger:     logger.NewLogger(),
	}
}

type CreateInfrastructureRequest struct {
	Name          string   `json:"name" binding:"required" validate:"required,min=1,max=150"`
	Address       string   `json:"address"`
	Description   string   `json:"description"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	CommuneID     uint     `json:"commune_id" binding:"required"`
	Accessibility []string `json:"accessibility"`
	MaxCapacity   uint     `json:"max_capacity"`
}

type UpdateInfrastructureRequest struct {
	Name          string   `json:"name" binding:"required"`
	Address       string   `json:"address"`
	Description   string   `json:"description"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Accessibility []string `json:"accessibility"`
	Status        string   `json:"status"`
	MaxCapacity   *uint    `json:"max_capacity"`
}

type FindNearbyRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	// Percentage of free capacity required, 0-100. Defaults to 10.
	MinAvailabilityPercent *float64 `json:"min_availability_percent"`
}

type ReplaceWeeklyDaysRequest struct {
	WeeklyDays []int `json:"weekly_days"`
}

type AddOpeningExceptionRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Type      string `json:"type" binding:"required"`
}

func (h *InfrastructureHandler) Create(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateInfrastructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create infrastructure", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateInfrastructureCommand{
		Identity:      identity,
		Name:          req.Name,
		Address:       req.Address,
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		CommuneID:     req.CommuneID,
		Accessibility: req.Accessibility,
		MaxCapacity:   req.MaxCapacity,
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Infrastructure created successfully")
}

func (h *InfrastructureHandler) Update(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateInfrastructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update infrastructure", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateInfrastructureCommand{
		Identity:         identity,
		InfrastructureID: c.Param("id"),
		Name:             req.Name,
		Address:          req.Address,
		Description:      req.Description,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Accessibility:    req.Accessibility,
		Status:           req.Status,
		MaxCapacity:      req.MaxCapacity,
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Infrastructure updated successfully", result)
}

func (h *InfrastructureHandler) Delete(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteInfrastructureCommand{
		Identity:         identity,
		InfrastructureID: c.Param("id"),
	}
	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// FindNearby is public: residents look up open capacity around them
// without an account.
func (h *InfrastructureHandler) FindNearby(c *gin.Context) {
	var req FindNearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for find nearby", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	minPercent := 10.0
	if req.MinAvailabilityPercent != nil {
		minPercent = *req.MinAvailabilityPercent
	}

	results, err := h.findNearby.Execute(c.Request.Context(), usecases.FindNearbyQuery{
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		MinFreeRatio: minPercent / 100,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"infrastructures": results})
}

func (h *InfrastructureHandler) GetOpeningSchedule(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	schedule, err := h.openingUC.Get(c.Request.Context(), usecases.GetOpeningScheduleQuery{
		Identity:         identity,
		InfrastructureID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", schedule)
}

func (h *InfrastructureHandler) ReplaceWeeklyDays(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReplaceWeeklyDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ReplaceWeeklyDaysCommand{
		Identity:         identity,
		InfrastructureID: c.Param("id"),
		WeeklyDays:       req.WeeklyDays,
	}
	if err := h.openingUC.ReplaceWeeklyDays(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Opening days updated successfully", nil)
}

func (h *InfrastructureHandler) AddOpeningException(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddOpeningExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.AddOpeningExceptionCommand{
		Identity:         identity,
		InfrastructureID: c.Param("id"),
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Type:             req.Type,
	}

	exception, err := h.openingUC.AddException(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, exception, "Opening exception created successfully")
}

func (h *InfrastructureHandler) DeleteOpeningException(c *gin.Context) {
	identity, err := currentIdentity(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	exceptionID, err := utils.ParseUintParam(c, "exception_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteOpeningExceptionCommand{
		Identity:         identity,
		InfrastructureID: c.Param("id"),
		ExceptionID:      exceptionID,
	}
	if err := h.openingUC.DeleteException(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
