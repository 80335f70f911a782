package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type MaintenanceController struct {
	store store.Store
}

func NewMaintenanceController(s store.Store) *MaintenanceController {
	return &MaintenanceController{store: s}
}

type maintenanceInput struct {
	VehicleID     uint       `json:"vehicle_id" binding:"required"`
	Description   string     `json:"description" binding:"required"`
	ScheduledDate *time.Time `json:"scheduled_date"`
}

type maintenanceUpdateInput struct {
	Status string `json:"status" binding:"required"`
}

type maintenanceResponse struct {
	ID            uint       `json:"id"`
	VehicleID     uint       `json:"vehicle_id"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toMaintenanceResponse(m *models.Maintenance) maintenanceResponse {
	return maintenanceResponse{
		ID:            m.ID,
		VehicleID:     m.VehicleID,
		Description:   m.Description,
		Status:        m.Status,
		ScheduledDate: m.ScheduledDate,
		CreatedAt:     m.CreatedAt,
	}
}

// Schedule creates a maintenance task for an existing vehicle.
func (mc *MaintenanceController) Schedule(c *gin.Context) {
	var input maintenanceInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := mc.store.Vehicles().Get(input.VehicleID); err != nil {
		respondStoreError(c, "Vehicle", "scheduling the maintenance task", err)
		return
	}

	task := models.Maintenance{
		VehicleID:     input.VehicleID,
		Description:   input.Description,
		Status:        "Scheduled",
		ScheduledDate: input.ScheduledDate,
	}
	if err := mc.store.Maintenance().Create(&task); err != nil {
		storageError(c, "scheduling the maintenance task", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Maintenance task scheduled successfully", "maintenance_id": task.ID})
}

func (mc *MaintenanceController) UpdateStatus(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	var input maintenanceUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	if err := mc.store.Maintenance().Updates(id, map[string]any{"status": input.Status}); err != nil {
		respondStoreError(c, "Maintenance task", "updating the maintenance task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Maintenance task updated successfully"})
}

func (mc *MaintenanceController) List(c *gin.Context) {
	tasks, err := mc.store.Maintenance().List()
	if err != nil {
		storageError(c, "fetching maintenance tasks", err)
		return
	}

	out := make([]maintenanceResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, toMaintenanceResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, out)
}
