package routes

import (
	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/handlers"
)

// RegisterRoutes mounts the HTTP API under /api/v1.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := router.Group("/api/v1")
	{
		appHandlers.InternshipHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.ForumHandler.RegisterRoutes(api)
		appHandlers.ReportHandler.RegisterRoutes(api)
		appHandlers.StatsHandler.RegisterRoutes(api)
	}
}
