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

type ReadingHandler struct {
	readingService *service.ReadingService
	pagination     config.PaginationConfig
}

func NewReadingHandler(readingService *service.ReadingService, pagination config.PaginationConfig) *ReadingHandler {
	return &ReadingHandler{readingService: readingService, pagination: pagination}
}

func (h *ReadingHandler) Create(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Create")

	var req dto.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	reading, err := h.readingService.Create(ctx, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create reading").
			String("reading_type", req.ReadingType).
			Err(err).
			Log()
		respondError(c, "Failed to create reading", err)
		return
	}

	c.JSON(http.StatusCreated, reading)
}

// BulkCreate ingests a batch of readings in one statement and returns a
// summary instead of the created rows.
func (h *ReadingHandler) BulkCreate(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "BulkCreate")

	var reqs []dto.CreateReadingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	logger.InfoWithContext(ctx, "Bulk create readings request").
		Int("count", len(reqs)).
		Log()

	summary, err := h.readingService.BulkCreate(ctx, reqs)
	if err != nil {
		logger.ErrorWithContext(ctx, "Bulk reading creation failed").
			Int("count", len(reqs)).
			Err(err).
			Log()
		respondError(c, "Failed to create readings", err)
		return
	}

	logger.InfoWithContext(ctx, "Readings created").
		Int("total_created", summary.TotalCreated).
		Log()

	c.JSON(http.StatusCreated, summary)
}

func (h *ReadingHandler) List(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "List")

	page, ok := pageParams(c, h.pagination)
	if !ok {
		return
	}

	res, err := h.readingService.List(ctx, c.Request.URL.Query(), page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list readings").
			Err(err).
			Log()
		respondError(c, "Failed to list readings", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// BulkUpdate applies a batch of partial updates atomically. Any unknown ID
// fails the whole batch.
func (h *ReadingHandler) BulkUpdate(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "BulkUpdate")

	var reqs []dto.UpdateReadingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	readings, err := h.readingService.BulkUpdate(ctx, reqs)
	if err != nil {
		logger.ErrorWithContext(ctx, "Bulk reading update failed").
			Int("count", len(reqs)).
			Err(err).
			Log()
		respondError(c, "Failed to update readings", err)
		return
	}

	c.JSON(http.StatusOK, readings)
}

func (h *ReadingHandler) BulkDelete(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "BulkDelete")

	var req dto.DeleteReadingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	deleted, err := h.readingService.BulkDelete(ctx, req.IDs)
	if err != nil {
		logger.ErrorWithContext(ctx, "Bulk reading deletion failed").
			Int("count", len(req.IDs)).
			Err(err).
			Log()
		respondError(c, "Failed to delete readings", err)
		return
	}

	logger.InfoWithContext(ctx, "Readings deleted").
		Int64("deleted", deleted).
		Log()

	c.JSON(http.StatusOK, gin.H{
		"message": "Readings deleted successfully",
		"deleted": deleted,
	})
}
