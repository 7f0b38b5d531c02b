package routes

import (
	"github.com/gin-gonic/gin"

	"meeting-insights/internal/api/v1/handlers"
	"meeting-insights/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	InsightsService     services.InsightsService
	ExportService       services.ExportService
	NotificationService services.NotificationService
	MaxUploadBytes      int64
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	insightsHandler := handlers.NewInsightsHandler(container.InsightsService, container.MaxUploadBytes)
	group := router.Group("/insights")
	{
		group.POST("", insightsHandler.Extract)

		if container.ExportService != nil {
			exportHandler := handlers.NewExportHandler(container.ExportService)
			group.POST("/export", exportHandler.Export)
		}

		if container.NotificationService != nil {
			notificationHandler := handlers.NewNotificationHandler(container.NotificationService)
			group.POST("/email", notificationHandler.Email)
		}
	}
}
