package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type FleetController struct {
	store store.Store
}

func NewFleetController(s store.Store) *FleetController {
	return &FleetController{store: s}
}

type fleetInput struct {
	Name string `json:"name" binding:"required"`
}

type fleetResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (fc *FleetController) Create(c *gin.Context) {
	var input fleetInput
	if !bindJSON(c, &input) {
		return
	}

	fleet := models.Fleet{Name: input.Name}
	if err := fc.store.Fleets().Create(&fleet); err != nil {
		storageError(c, "creating the fleet", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Fleet created successfully", "fleet_id": fleet.ID})
}

func (fc *FleetController) Get(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	fleet, err := fc.store.Fleets().Get(id)
	if err != nil {
		respondStoreError(c, "Fleet", "fetching the fleet", err)
		return
	}

	c.JSON(http.StatusOK, fleetResponse{ID: fleet.ID, Name: fleet.Name, CreatedAt: fleet.CreatedAt})
}

func (fc *FleetController) List(c *gin.Context) {
	fleets, err := fc.store.Fleets().List()
	if err != nil {
		storageError(c, "fetching fleets", err)
		return
	}

	out := make([]fleetResponse, 0, len(fleets))
	for _, f := range fleets {
		out = append(out, fleetResponse{ID: f.ID, Name: f.Name, CreatedAt: f.CreatedAt})
	}
	c.JSON(http.StatusOK, out)
}

func (fc *FleetController) Update(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	var input fleetInput
	if !bindJSON(c, &input) {
		return
	}

	if err := fc.store.Fleets().Updates(id, map[string]any{"name": input.Name}); err != nil {
		respondStoreError(c, "Fleet", "updating the fleet", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fleet updated successfully"})
}

func (fc *FleetController) Delete(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	if err := fc.store.Fleets().Delete(id); err != nil {
		respondStoreError(c, "Fleet", "deleting the fleet", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fleet deleted successfully"})
}
