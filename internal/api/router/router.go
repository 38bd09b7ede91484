package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/api/handler"
	"gitops-dashboard/internal/api/middleware"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/internal/store"
	"gitops-dashboard/internal/websocket"
)

// Setup wires the services onto the HTTP surface.
func Setup(s *store.Store, hub *websocket.Hub) *gin.Engine {
	applicationService := service.NewApplicationService(s, hub)
	repositoryService := service.NewRepositoryService(s, hub)
	deploymentService := service.NewDeploymentService(s, hub)
	activityService := service.NewActivityService(s, hub)
	syncService := service.NewSyncService(s, hub)
	dashboardService := service.NewDashboardService(s)
	authService := service.NewAuthService(s)

	applicationHandler := handler.NewApplicationHandler(applicationService)
	repositoryHandler := handler.NewRepositoryHandler(repositoryService)
	deploymentHandler := handler.NewDeploymentHandler(deploymentService)
	activityHandler := handler.NewActivityHandler(activityService)
	syncHandler := handler.NewSyncHandler(syncService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authService)
	wsHandler := handler.NewWSHandler(hub, dashboardService, syncService)

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.Logger(), middleware.Cors())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "clients": hub.ClientCount()})
	})

	engine.GET("/ws", wsHandler.Serve)

	api := engine.Group("/api")
	{
		api.GET("/dashboard", dashboardHandler.GetDashboard)
		api.GET("/cluster-health", dashboardHandler.GetClusterHealth)
		api.GET("/sync-status", dashboardHandler.GetSyncStatus)

		api.GET("/applications", applicationHandler.List)
		api.POST("/applications", applicationHandler.Create)
		api.GET("/applications/:id", applicationHandler.Get)
		api.PATCH("/applications/:id", applicationHandler.Update)
		api.PUT("/applications/:id", applicationHandler.Update)
		api.DELETE("/applications/:id", applicationHandler.Delete)

		api.GET("/repositories", repositoryHandler.List)
		api.POST("/repositories", repositoryHandler.Create)
		api.GET("/repositories/:id", repositoryHandler.Get)
		api.PATCH("/repositories/:id", repositoryHandler.Update)
		api.DELETE("/repositories/:id", repositoryHandler.Delete)

		api.GET("/deployments", deploymentHandler.List)
		api.POST("/deployments", deploymentHandler.Create)
		api.GET("/deployments/stats", deploymentHandler.Stats)
		api.GET("/deployments/:id", deploymentHandler.Get)

		api.GET("/activities", activityHandler.List)
		api.POST("/activities", activityHandler.Create)

		api.POST("/sync/:applicationId", syncHandler.SyncApplication)
		api.POST("/sync-all", syncHandler.ForceSync)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.JWTAuth(), authHandler.Me)
		}
	}

	return engine
}
