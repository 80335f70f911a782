package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type TripController struct {
	store store.Store
}

func NewTripController(s store.Store) *TripController {
	return &TripController{store: s}
}

type tripInput struct {
	VehicleID     uint   `json:"vehicle_id" binding:"required"`
	StartLocation string `json:"start_location" binding:"required"`
}

type endTripInput struct {
	EndLocation string `json:"end_location" binding:"required"`
}

type tripResponse struct {
	ID            uint       `json:"id"`
	VehicleID     uint       `json:"vehicle_id"`
	StartLocation string     `json:"start_location"`
	EndLocation   *string    `json:"end_location"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
}

func toTripResponse(t *models.Trip) tripResponse {
	return tripResponse{
		ID:            t.ID,
		VehicleID:     t.VehicleID,
		StartLocation: t.StartLocation,
		EndLocation:   t.EndLocation,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
	}
}

// Start creates a trip against an existing vehicle; start_time is server-set.
func (tc *TripController) Start(c *gin.Context) {
	var input tripInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := tc.store.Vehicles().Get(input.VehicleID); err != nil {
		respondStoreError(c, "Vehicle", "starting the trip", err)
		return
	}

	trip := models.Trip{
		VehicleID:     input.VehicleID,
		StartLocation: input.StartLocation,
		StartTime:     time.Now().UTC(),
	}
	if err := tc.store.Trips().Create(&trip); err != nil {
		storageError(c, "starting the trip", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Trip started successfully", "trip_id": trip.ID})
}

// End sets end_location and end_time once; a trip that has ended stays ended.
func (tc *TripController) End(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	var input endTripInput
	if !bindJSON(c, &input) {
		return
	}

	trip, err := tc.store.Trips().Get(id)
	if err != nil {
		respondStoreError(c, "Trip", "ending the trip", err)
		return
	}

	if trip.EndTime != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Trip has already ended"})
		return
	}

	err = tc.store.Trips().Updates(id, map[string]any{
		"end_location": input.EndLocation,
		"end_time":     time.Now().UTC(),
	})
	if err != nil {
		respondStoreError(c, "Trip", "ending the trip", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip ended successfully"})
}

func (tc *TripController) Get(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	trip, err := tc.store.Trips().Get(id)
	if err != nil {
		respondStoreError(c, "Trip", "fetching the trip", err)
		return
	}

	c.JSON(http.StatusOK, toTripResponse(trip))
}

// List returns all trips, optionally narrowed to one vehicle.
func (tc *TripController) List(c *gin.Context) {
	var opts []store.QueryOption
	if raw := c.Query("vehicle_id"); raw != "" {
		vehicleID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle_id parameter"})
			return
		}
		opts = append(opts, store.Where("vehicle_id", uint(vehicleID)))
	}

	trips, err := tc.store.Trips().List(opts...)
	if err != nil {
		storageError(c, "fetching trips", err)
		return
	}

	out := make([]tripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, toTripResponse(&trips[i]))
	}
	c.JSON(http.StatusOK, out)
}
