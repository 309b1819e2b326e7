package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskapp/internal/adapter/http/handler"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/core/telemetry"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	TaskHandler *handler.TaskHandler

	// Authenticator guards every /api/tasks route.
	Authenticator gin.HandlerFunc

	// TaskCache is optional; nil disables response caching.
	TaskCache *middleware.TaskCache
}

// ModeForEnvironment keeps gin's debug chatter out of production logs.
func ModeForEnvironment(environment string) string {
	if environment == "production" {
		return gin.ReleaseMode
	}

	return gin.DebugMode
}

func SetupRouter(handlers HandlersConfig, metrics *telemetry.AppMetrics, logger zerolog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware("taskapp"))
	router.Use(middleware.Logging(logger))

	if metrics != nil {
		router.Use(middleware.Metrics(metrics))
	}

	router.Use(middleware.CORS())

	mountRoutes(router, handlers)

	return router
}

// SetupRouterForTests mounts the same routes without the telemetry and
// logging stack.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	mountRoutes(router, handlers)

	return router
}

func mountRoutes(router *gin.Engine, handlers HandlersConfig) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.AuthHandler.Register)
		auth.POST("/login", handlers.AuthHandler.Login)
	}

	tasks := api.Group("/tasks")
	tasks.Use(handlers.Authenticator)

	if handlers.TaskCache != nil {
		tasks.Use(handlers.TaskCache.Middleware())
	}

	{
		tasks.GET("", handlers.TaskHandler.ListOpen)
		tasks.POST("", handlers.TaskHandler.Create)
		tasks.PUT("/:id/complete", handlers.TaskHandler.Complete)
	}
}
