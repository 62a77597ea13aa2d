package router

import "github.com/gin-gonic/gin"

func (r *Router) readingRoutes(version *gin.RouterGroup) {
	readings := version.Group("/readings")
	{
		readings.Use(r.jwtMw.RequireAuth())
		{
			readings.POST("", r.readingHandler.Create)
			readings.GET("", r.readingHandler.List)

			// Bulk operations share one path; the verb picks the action
			readings.POST("/bulk", r.readingHandler.BulkCreate)
			readings.PUT("/bulk", r.readingHandler.BulkUpdate)
			readings.DELETE("/bulk", r.readingHandler.BulkDelete)
		}
	}
}
