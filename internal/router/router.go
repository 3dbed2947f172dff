package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sitewatch-dev/sitewatch/internal/handlers"
	"github.com/sitewatch-dev/sitewatch/internal/middleware"
	"github.com/sitewatch-dev/sitewatch/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:identifier", middleware.AuthMiddleware(), handlers.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.CreateUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		api.GET("/dashboard", middleware.AuthMiddleware(), handlers.GetDashboard)

		monitorTypes := api.Group("/monitor-types")
		{
			monitorTypes.GET("", handlers.ListMonitorTypes)
			monitorTypes.GET("/:type", handlers.GetMonitorType)
			monitorTypes.POST("/validate", handlers.ValidateMonitorData)
			monitorTypes.POST("/format-detail", handlers.FormatMonitorDetail)
			monitorTypes.POST("/format-title-suffix", handlers.FormatMonitorTitleSuffix)
		}

		settings := api.Group("/settings", middleware.AuthMiddleware())
		{
			settings.GET("", handlers.GetSettings)
			settings.PUT("", handlers.UpdateSettings)
			settings.POST("/reset", handlers.ResetSettings)
			settings.GET("/history-limit", handlers.GetHistoryLimit)
			settings.PUT("/history-limit", handlers.UpdateHistoryLimit)
		}

		system := api.Group("/system", middleware.AuthMiddleware())
		{
			system.GET("/errors", handlers.GetSystemErrors)
			system.DELETE("/errors", handlers.ClearSystemErrors)
		}

		sites := api.Group("/sites", middleware.AuthMiddleware())
		{
			sites.POST("", handlers.CreateSite)
			sites.GET("", handlers.ListSites)
			sites.GET("/:identifier", handlers.GetSite)
			sites.PATCH("/:identifier", handlers.UpdateSite)
			sites.DELETE("/:identifier", handlers.DeleteSite)

			sites.GET("/:identifier/dashboard", handlers.GetSiteDashboard)
			sites.POST("/:identifier/monitoring/start", handlers.StartSiteMonitoring)
			sites.POST("/:identifier/monitoring/stop", handlers.StopSiteMonitoring)

			sites.POST("/:identifier/monitors", handlers.CreateMonitor)
			sites.PUT("/:identifier/monitors/:monitor_id", handlers.UpdateMonitor)
			sites.DELETE("/:identifier/monitors/:monitor_id", handlers.DeleteMonitor)
			sites.GET("/:identifier/monitors/:monitor_id/checks", handlers.GetMonitorChecks)
			sites.POST("/:identifier/monitors/:monitor_id/monitoring/start", handlers.StartMonitorMonitoring)
			sites.POST("/:identifier/monitors/:monitor_id/monitoring/stop", handlers.StopMonitorMonitoring)
			sites.POST("/:identifier/monitors/:monitor_id/check-now", handlers.CheckMonitorNow)
		}
	}

	return r
}
