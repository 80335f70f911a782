package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func BillingRoutes(api *gin.RouterGroup, s store.Store) {
	ic := controllers.NewInvoiceController(s)

	invoices := api.Group("/invoices")
	{
		invoices.GET("", ic.List)
		invoices.POST("", ic.Create)
		invoices.GET("/:id", ic.Get)
	}

	api.POST("/payments", ic.ProcessPayment)
	api.GET("/billing/history", ic.BillingHistory)
}
