package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fleetops/internal/store"
)

// SetupRouter wires every resource group under /api/v1 against the given
// store.
func SetupRouter(s store.Store) *gin.Engine {
	r := gin.New()

	// Recovery is the outermost fallback: a panicking handler becomes a 500,
	// never a dropped connection or a stack trace in the body.
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	api := r.Group("/api/v1")

	AuthRoutes(api, s)
	UserRoutes(api, s)
	VehicleRoutes(api, s)
	FleetRoutes(api, s)
	TripRoutes(api, s)
	MaintenanceRoutes(api, s)
	AlertRoutes(api, s)
	BillingRoutes(api, s)
	GeofenceRoutes(api, s)
	PricingRoutes(api, s)
	StationRoutes(api, s)
	ReportRoutes(api, s)

	return r
}
