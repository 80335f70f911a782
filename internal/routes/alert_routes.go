package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func AlertRoutes(api *gin.RouterGroup, s store.Store) {
	ac := controllers.NewAlertController(s)

	alerts := api.Group("/alerts")
	{
		alerts.GET("", ac.List)
		alerts.POST("", ac.Create)
		alerts.PATCH("/:id/resolve", ac.Resolve)
	}
}
