package router

import "github.com/gin-gonic/gin"

func (r *Router) authRoutes(version *gin.RouterGroup) {
	auth := version.Group("/auth")
	{
		// Public routes (no authentication required)
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.Refresh)

		// Access-token logout revokes the presented access token; the
		// refresh variant revokes the presented refresh token.
		protected := auth.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.POST("/logout-access", r.authHandler.Logout)

			// Current authenticated user
			protected.GET("/me", r.authHandler.Me)

			// Admin-only listing with filtering and search
			protected.GET("/users", r.authHandler.ListUsers)
		}

		refresh := auth.Group("")
		refresh.Use(r.jwtMw.RequireRefresh())
		{
			refresh.POST("/logout-refresh", r.authHandler.Logout)
		}
	}
}
