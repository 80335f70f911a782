package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func MaintenanceRoutes(api *gin.RouterGroup, s store.Store) {
	mc := controllers.NewMaintenanceController(s)

	maintenance := api.Group("/maintenance")
	{
		maintenance.GET("", mc.List)
		maintenance.POST("", mc.Schedule)
		maintenance.PATCH("/:id", mc.UpdateStatus)
	}
}
