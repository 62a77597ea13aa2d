package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/constants"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/model"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/service"
	ctxutil "github.com/Aaron-Ontoyin/enerlytics-backend/pkg/context"
	"github.com/Aaron-Ontoyin/enerlytics-backend/pkg/logger"
)

// Gin context keys set by the JWT middleware.
const (
	GinKeyUser   = "current_user"
	GinKeyClaims = "token_claims"
)

type JWTMiddleware struct {
	authService *service.AuthService
}

func NewJWTMiddleware(authService *service.AuthService) *JWTMiddleware {
	return &JWTMiddleware{authService: authService}
}

// RequireAuth validates a Bearer access token, rejects revoked tokens, and
// attaches the authenticated user to the request.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return m.require(service.TokenTypeAccess)
}

// RequireRefresh is the same flow for endpoints that consume refresh
// tokens (logout-refresh).
func (m *JWTMiddleware) RequireRefresh() gin.HandlerFunc {
	return m.require(service.TokenTypeRefresh)
}

func (m *JWTMiddleware) require(tokenType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			logger.GetLogger().Warn("Missing or malformed Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			abortUnauthorized(c)
			return
		}

		ctx := c.Request.Context()

		var claims *service.TokenClaims
		var err error
		if tokenType == service.TokenTypeRefresh {
			claims, err = m.authService.ValidateRefreshToken(ctx, tokenString)
		} else {
			claims, err = m.authService.ValidateAccessToken(ctx, tokenString)
		}
		if err != nil {
			logger.GetLogger().Warn("Token validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err))
			abortUnauthorized(c)
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := m.authService.GetUserModel(ctx, userID)
		if err != nil {
			logger.GetLogger().Warn("Token user not found",
				zap.String("user_id", claims.UserID),
				zap.Error(err))
			abortUnauthorized(c)
			return
		}

		c.Set(GinKeyUser, user)
		c.Set(GinKeyClaims, claims)
		c.Request = c.Request.WithContext(ctxutil.WithUserID(ctx, user.ID.String()))

		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(GinKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

// CurrentClaims returns the token claims attached by RequireAuth.
func CurrentClaims(c *gin.Context) (*service.TokenClaims, bool) {
	value, exists := c.Get(GinKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.TokenClaims)
	return claims, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(constants.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return parts[1], true
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized, nil))
	c.Abort()
}
