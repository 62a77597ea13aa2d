package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aaron-Ontoyin/enerlytics-backend/config"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/handler"
	"github.com/Aaron-Ontoyin/enerlytics-backend/internal/middleware"
)

type Router struct {
	authHandler        *handler.AuthHandler
	areaHandler        *handler.CoverageAreaHandler
	transformerHandler *handler.TransformerHandler
	meterHandler       *handler.MeterHandler
	readingHandler     *handler.ReadingHandler
	alertHandler       *handler.AlertHandler
	healthHandler      *handler.HealthHandler

	jwtMw  *middleware.JWTMiddleware
	Config *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	area *handler.CoverageAreaHandler,
	transformer *handler.TransformerHandler,
	meter *handler.MeterHandler,
	reading *handler.ReadingHandler,
	alert *handler.AlertHandler,
	health *handler.HealthHandler,
	jwtMw *middleware.JWTMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:        auth,
		areaHandler:        area,
		transformerHandler: transformer,
		meterHandler:       meter,
		readingHandler:     reading,
		alertHandler:       alert,
		healthHandler:      health,

		jwtMw:  jwtMw,
		Config: cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if !r.Config.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestContext())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.BasicHealth)
		api.GET("/health/full", r.healthHandler.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.Config.RateLimit.Request, time.Duration(r.Config.RateLimit.Duration)*time.Second))

			r.authRoutes(v1)
			r.coverageAreaRoutes(v1)
			r.transformerRoutes(v1)
			r.meterRoutes(v1)
			r.readingRoutes(v1)
			r.alertRoutes(v1)
		}
	}

	return router
}
