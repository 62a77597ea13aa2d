package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aaron-Ontoyin/enerlytics-backend/config"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/constants"
	apperrors "github.com/Aaron-Ontoyin/enerlytics-backend/internal/errors"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/query"
)

// pageParams parses and validates pagination query parameters, writing the
// 400 response itself on violation.
func pageParams(c *gin.Context, cfg config.PaginationConfig) (query.PageParams, bool) {
	params, err := query.ParsePageParams(c.Request.URL.Query(), cfg.DefaultSize, cfg.MaxSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return query.PageParams{}, false
	}
	return params, true
}

// uuidParam parses the :id path parameter, writing the 400 response itself
// on violation.
func uuidParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid ID", err.Error()))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps a service error onto the HTTP boundary.
func respondError(c *gin.Context, message string, err error) {
	status := apperrors.ToHTTPStatus(err)
	c.JSON(status, constants.BuildErrorResponse(message, apperrors.GetErrorMessage(err)))
}
