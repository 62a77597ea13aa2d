package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aaron-Ontoyin/enerlytics-backend/config"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/constants"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/service"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
)

type MeterHandler struct {
	infraService *service.InfrastructureService
	pagination   config.PaginationConfig
}

func NewMeterHandler(infraService *service.InfrastructureService, pagination config.PaginationConfig) *MeterHandler {
	return &MeterHandler{infraService: infraService, pagination: pagination}
}

func (h *MeterHandler) Create(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Create")

	var req dto.CreateMeterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	logger.InfoWithContext(ctx, "Create meter request").
		String("name", req.Name).
		Log()

	meter, err := h.infraService.CreateMeter(ctx, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create meter").
			String("name", req.Name).
			Err(err).
			Log()
		respondError(c, "Failed to create meter", err)
		return
	}

	c.JSON(http.StatusCreated, meter)
}

func (h *MeterHandler) Get(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Get")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	meter, err := h.infraService.GetMeter(ctx, id)
	if err != nil {
		respondError(c, "Failed to fetch meter", err)
		return
	}

	c.JSON(http.StatusOK, meter)
}

func (h *MeterHandler) Update(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Update")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var req dto.UpdateMeterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	meter, err := h.infraService.UpdateMeter(ctx, id, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to update meter").
			String("meter_id", id.String()).
			Err(err).
			Log()
		respondError(c, "Failed to update meter", err)
		return
	}

	c.JSON(http.StatusOK, meter)
}

func (h *MeterHandler) Delete(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Delete")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	if err := h.infraService.DeleteMeter(ctx, id); err != nil {
		respondError(c, "Failed to delete meter", err)
		return
	}

	logger.InfoWithContext(ctx, "Meter deleted").
		String("meter_id", id.String()).
		Log()

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Meter deleted successfully"))
}

func (h *MeterHandler) List(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "List")

	page, ok := pageParams(c, h.pagination)
	if !ok {
		return
	}

	res, err := h.infraService.ListMeters(ctx, c.Request.URL.Query(), page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list meters").
			Err(err).
			Log()
		respondError(c, "Failed to list meters", err)
		return
	}

	c.JSON(http.StatusOK, res)
}
