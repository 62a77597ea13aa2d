package router

import "github.com/gin-gonic/gin"

func (r *Router) alertRoutes(version *gin.RouterGroup) {
	alerts := version.Group("/alerts")
	{
		alerts.Use(r.jwtMw.RequireAuth())
		{
			alerts.POST("", r.alertHandler.Create)
			alerts.GET("", r.alertHandler.List)
			alerts.GET("/:id", r.alertHandler.Get)
			alerts.PUT("/:id", r.alertHandler.Update)
			alerts.DELETE("/:id", r.alertHandler.Delete)
		}
	}
}
