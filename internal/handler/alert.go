package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aaron-Ontoyin/enerlytics-backend/config"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/constants"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/service"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
)

type AlertHandler struct {
	alertService *service.AlertService
	pagination   config.PaginationConfig
}

func NewAlertHandler(alertService *service.AlertService, pagination config.PaginationConfig) *AlertHandler {
	return &AlertHandler{alertService: alertService, pagination: pagination}
}

func (h *AlertHandler) Create(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Create")

	var req dto.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	alert, err := h.alertService.Create(ctx, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create alert").
			String("title", req.Title).
			Err(err).
			Log()
		respondError(c, "Failed to create alert", err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) Get(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Get")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	alert, err := h.alertService.Get(ctx, id)
	if err != nil {
		respondError(c, "Failed to fetch alert", err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

func (h *AlertHandler) Update(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Update")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	alert, err := h.alertService.Update(ctx, id, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to update alert").
			String("alert_id", id.String()).
			Err(err).
			Log()
		respondError(c, "Failed to update alert", err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

func (h *AlertHandler) Delete(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Delete")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	if err := h.alertService.Delete(ctx, id); err != nil {
		respondError(c, "Failed to delete alert", err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Alert deleted successfully"))
}

// List hides expired alerts unless exclude_expired=false is passed.
func (h *AlertHandler) List(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "List")

	page, ok := pageParams(c, h.pagination)
	if !ok {
		return
	}

	excludeExpired := true
	if raw := c.Query("exclude_expired"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, "exclude_expired must be a boolean"))
			return
		}
		excludeExpired = parsed
	}

	res, err := h.alertService.List(ctx, c.Request.URL.Query(), page, excludeExpired)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list alerts").
			Err(err).
			Log()
		respondError(c, "Failed to list alerts", err)
		return
	}

	c.JSON(http.StatusOK, res)
}
