package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func GeofenceRoutes(api *gin.RouterGroup, s store.Store) {
	gc := controllers.NewGeofenceController(s)

	geofences := api.Group("/geofences")
	{
		geofences.GET("", gc.List)
		geofences.POST("", gc.Create)
		geofences.GET("/:id", gc.Get)
		geofences.PATCH("/:id", gc.Update)
		geofences.DELETE("/:id", gc.Delete)
	}
}
