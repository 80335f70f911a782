package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func StationRoutes(api *gin.RouterGroup, s store.Store) {
	sc := controllers.NewStationController(s)

	stations := api.Group("/stations")
	{
		stations.GET("", sc.List)
		stations.POST("", sc.Create)
		stations.GET("/:id", sc.Get)
		stations.PATCH("/:id", sc.Update)
		stations.DELETE("/:id", sc.Delete)
	}

	rebalancing := api.Group("/rebalancing")
	{
		rebalancing.GET("/stations", sc.List)
		rebalancing.POST("/transfer", sc.Transfer)
	}
}
