package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/store"
)

func UserRoutes(api *gin.RouterGroup, s store.Store) {
	uc := controllers.NewUserController(s)

	users := api.Group("/users")
	{
		users.GET("", uc.List)
		users.GET("/:id", uc.Get)
		users.POST("/:id/roles/:roleID", uc.AssignRole)
		users.DELETE("/:id/roles/:roleID", uc.RemoveRole)
	}

	api.POST("/activity", uc.LogActivity)
	api.GET("/activity", uc.ListActivity)
}
