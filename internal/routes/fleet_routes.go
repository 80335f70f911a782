package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func FleetRoutes(api *gin.RouterGroup, s store.Store) {
	fc := controllers.NewFleetController(s)

	fleets := api.Group("/fleets")
	{
		fleets.GET("", fc.List)
		fleets.POST("", fc.Create)
		fleets.GET("/:id", fc.Get)
		fleets.PUT("/:id", fc.Update)
		fleets.DELETE("/:id", fc.Delete)
	}
}
