package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/controllers"
	"fleetops/internal/middleware"
	"fleetops/internal/store"
)

func AuthRoutes(api *gin.RouterGroup, s store.Store) {
	ac := controllers.NewAuthController(s)
	rc := controllers.NewRoleController(s)

	auth := api.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/logout", ac.Logout)
		auth.GET("/me", middleware.RequireAuth(), ac.Me)

		auth.GET("/roles", rc.List)
		auth.POST("/roles", rc.Create)
		auth.PUT("/roles/:id", rc.Update)
		auth.DELETE("/roles/:id", rc.Delete)
	}
}
