package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aaron-Ontoyin/enerlytics-backend/config"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/constants"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/dto"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/middleware"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/service"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
)

type AuthHandler struct {
	authService *service.AuthService
	pagination  config.PaginationConfig
}

func NewAuthHandler(authService *service.AuthService, pagination config.PaginationConfig) *AuthHandler {
	return &AuthHandler{authService: authService, pagination: pagination}
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Register")

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid registration payload").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	logger.InfoWithContext(ctx, "Register request").
		String("email", req.Email).
		Log()

	user, err := h.authService.Register(ctx, &req)
	if err != nil {
		logger.ErrorWithContext(ctx, "Registration failed").
			String("email", req.Email).
			Err(err).
			Log()
		respondError(c, "Registration failed", err)
		return
	}

	logger.InfoWithContext(ctx, "User registered").
		String("user_id", user.ID).
		Log()

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Login")

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	logger.InfoWithContext(ctx, "Login request").
		String("email", req.Email).
		Log()

	tokens, err := h.authService.Login(ctx, &req)
	if err != nil {
		logger.WarnWithContext(ctx, "Login failed").
			String("email", req.Email).
			Err(err).
			Log()
		respondError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Refresh")

	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgBadRequest, err.Error()))
		return
	}

	token, err := h.authService.Refresh(ctx, &req)
	if err != nil {
		logger.WarnWithContext(ctx, "Token refresh failed").
			Err(err).
			Log()
		respondError(c, "Token refresh failed", err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// Logout revokes the token the request authenticated with. It is mounted
// twice, behind the access and refresh token middlewares, so that both
// halves of a pair can be revoked independently.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Logout")

	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	if err := h.authService.Logout(ctx, claims); err != nil {
		logger.ErrorWithContext(ctx, "Logout failed").
			String("user_id", claims.UserID).
			Err(err).
			Log()
		respondError(c, "Logout failed", err)
		return
	}

	logger.InfoWithContext(ctx, "Token revoked").
		String("user_id", claims.UserID).
		String("token_type", claims.TokenType).
		Log()

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Successfully logged out"))
}

func (h *AuthHandler) Me(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Me")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	res, err := h.authService.GetUser(ctx, user.ID)
	if err != nil {
		respondError(c, "Failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "ListUsers")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
		return
	}

	page, ok := pageParams(c, h.pagination)
	if !ok {
		return
	}

	logger.InfoWithContext(ctx, "List users request").
		Int("page", page.Page).
		Int("size", page.Size).
		Log()

	res, err := h.authService.ListUsers(ctx, user, c.Request.URL.Query(), page)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list users").
			Err(err).
			Log()
		respondError(c, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, res)
}
