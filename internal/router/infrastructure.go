package router

import "github.com/gin-gonic/gin"

func (r *Router) coverageAreaRoutes(version *gin.RouterGroup) {
	areas := version.Group("/coverage-areas")
	{
		areas.Use(r.jwtMw.RequireAuth())
		{
			areas.POST("", r.areaHandler.Create)
			areas.GET("", r.areaHandler.List)
			areas.GET("/:id", r.areaHandler.Get)
			areas.GET("/:id/with-sub-areas", r.areaHandler.GetWithSubAreas)
			areas.PUT("/:id", r.areaHandler.Update)
			areas.DELETE("/:id", r.areaHandler.Delete)
		}
	}
}

func (r *Router) transformerRoutes(version *gin.RouterGroup) {
	transformers := version.Group("/transformers")
	{
		transformers.Use(r.jwtMw.RequireAuth())
		{
			transformers.POST("", r.transformerHandler.Create)
			transformers.GET("", r.transformerHandler.List)
			transformers.GET("/:id", r.transformerHandler.Get)
			transformers.PUT("/:id", r.transformerHandler.Update)
			transformers.DELETE("/:id", r.transformerHandler.Delete)
		}
	}
}

func (r *Router) meterRoutes(version *gin.RouterGroup) {
	meters := version.Group("/meters")
	{
		meters.Use(r.jwtMw.RequireAuth())
		{
			meters.POST("", r.meterHandler.Create)
			meters.GET("", r.meterHandler.List)
			meters.GET("/:id", r.meterHandler.Get)
			meters.PUT("/:id", r.meterHandler.Update)
			meters.DELETE("/:id", r.meterHandler.Delete)
		}
	}
}
