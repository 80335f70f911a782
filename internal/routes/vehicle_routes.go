package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func VehicleRoutes(api *gin.RouterGroup, s store.Store) {
	vc := controllers.NewVehicleController(s)

	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", vc.List)
		vehicles.POST("", vc.Create)
		vehicles.GET("/:id", vc.Get)
		vehicles.PATCH("/:id", vc.Update)
		vehicles.DELETE("/:id", vc.Delete)
		vehicles.GET("/:id/maintenance", vc.ListMaintenance)
	}
}
