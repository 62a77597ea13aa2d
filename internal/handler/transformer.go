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

type TransformerHandler struct {
	infraService *service.InfrastructureService
	pagination   config.PaginationConfig
}

func NewTransformerHandler(infraService *service.InfrastructureService, pagination config.PaginationConfig) *TransformerHandler {
	return &TransformerHandler{infraService: infraService, pagination: pagination}
}

func (h *TransformerHandler) Create(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Create")

	var req dto.CreateTransformerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	logger.InfoWithContext(ctx, "Create transformer request").
		String("name", req.Name).
		Log()

	transformer, err := h.infraService.CreateTransformer(ctx, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create transformer").
			String("name", req.Name).
			Err(err).
			Log()
		respondError(c, "Failed to create transformer", err)
		return
	}

	c.JSON(http.StatusCreated, transformer)
}

func (h *TransformerHandler) Get(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Get")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	transformer, err := h.infraService.GetTransformer(ctx, id)
	if err != nil {
		respondError(c, "Failed to fetch transformer", err)
		return
	}

	c.JSON(http.StatusOK, transformer)
}

func (h *TransformerHandler) Update(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Update")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTransformerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	transformer, err := h.infraService.UpdateTransformer(ctx, id, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to update transformer").
			String("transformer_id", id.String()).
			Err(err).
			Log()
		respondError(c, "Failed to update transformer", err)
		return
	}

	c.JSON(http.StatusOK, transformer)
}

func (h *TransformerHandler) Delete(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Delete")

	id, ok := uuidParam(c)
	if !ok {
		return
	}

	if err := h.infraService.DeleteTransformer(ctx, id); err != nil {
		respondError(c, "Failed to delete transformer", err)
		return
	}

	logger.InfoWithContext(ctx, "Transformer deleted").
		String("transformer_id", id.String()).
		Log()

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Transformer deleted successfully"))
}

func (h *TransformerHandler) List(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "List")

	page, ok := pageParams(c, h.pagination)
	if !ok {
		return
	}

	res, err := h.infraService.ListTransformers(ctx, c.Request.URL.Query(), page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list transformers").
			Err(err).
			Log()
		respondError(c, "Failed to list transformers", err)
		return
	}

	c.JSON(http.StatusOK, res)
}
