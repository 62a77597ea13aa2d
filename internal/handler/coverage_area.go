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

type CoverageAreaHandler struct {
	infraService *service.InfrastructureService
	pagination   config.PaginationConfig
}

func NewCoverageAreaHandler(infraService *service.InfrastructureService, pagination config.PaginationConfig) *CoverageAreaHandler {
	return &CoverageAreaHandler{infraService: infraService, pagination: pagination}
}

func (h *CoverageAreaHandler) Create(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Create")

	var req dto.CreateCoverageAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	logger.InfoWithContext(ctx, "Create coverage area request").
		String("name", req.Name).
		String("type", req.Type).
		Log()

	area, err := h.infraService.CreateArea(ctx, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create coverage area").
			String("name", req.Name).
			Err(err).
			Log()
		respondError(c, "Failed to create coverage area", err)
		return
	}

	c.JSON(http.StatusCreated, area)
}

func (h *CoverageAreaHandler) Get(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Get")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	area, err := h.infraService.GetArea(ctx, id)
	if err != nil {
		respondError(c, "Failed to fetch coverage area", err)
		return
	}

	c.JSON(http.StatusOK, area)
}

// GetWithSubAreas returns the area together with its direct children and
// their transformer and meter counts.
func (h *CoverageAreaHandler) GetWithSubAreas(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "GetWithSubAreas")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	area, err := h.infraService.GetAreaWithSubAreas(ctx, id)
	if err != nil {
		respondError(c, "Failed to fetch coverage area", err)
		return
	}

	c.JSON(http.StatusOK, area)
}

func (h *CoverageAreaHandler) Update(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Update")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCoverageAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	area, err := h.infraService.UpdateArea(ctx, id, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to update coverage area").
			String("area_id", id.String()).
			Err(err).
			Log()
		respondError(c, "Failed to update coverage area", err)
		return
	}

	c.JSON(http.StatusOK, area)
}

func (h *CoverageAreaHandler) Delete(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Delete")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	if err := h.infraService.DeleteArea(ctx, id); err != nil {
		respondError(c, "Failed to delete coverage area", err)
		return
	}

	logger.InfoWithContext(ctx, "Coverage area deleted").
		String("area_id", id.String()).
		Log()

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Coverage area deleted successfully"))
}

func (h *CoverageAreaHandler) List(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "List")

	page, ok := pageParams(c, h.pagination)
	if !ok {
		return
	}

	res, err := h.infraService.ListAreas(ctx, c.Request.URL.Query(), page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list coverage areas").
			Err(err).
			Log()
		respondError(c, "Failed to list coverage areas", err)
		return
	}

	c.JSON(http.StatusOK, res)
}
