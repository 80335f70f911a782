package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func TripRoutes(api *gin.RouterGroup, s store.Store) {
	tc := controllers.NewTripController(s)

	trips := api.Group("/trips")
	{
		trips.GET("", tc.List)
		trips.POST("", tc.Start)
		trips.GET("/:id", tc.Get)
		trips.PATCH("/:id", tc.End)
	}
}
