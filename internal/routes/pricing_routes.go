package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func PricingRoutes(api *gin.RouterGroup, s store.Store) {
	pc := controllers.NewPricingController(s)

	pricing := api.Group("/pricing")
	{
		pricing.POST("/base", pc.SetBasePrice)
		pricing.POST("/surge", pc.SetSurgePricing)
		pricing.GET("/rules", pc.ListRules)
	}
}
