package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func ReportRoutes(api *gin.RouterGroup, s store.Store) {
	rc := controllers.NewReportController(s)

	reports := api.Group("/reports")
	{
		reports.GET("", rc.List)
		reports.POST("", rc.Create)
		reports.GET("/usage", rc.Usage)
	}
}
