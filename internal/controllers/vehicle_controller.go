package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type VehicleController struct {
	store store.Store
}

func NewVehicleController(s store.Store) *VehicleController {
	return &VehicleController{store: s}
}

type vehicleInput struct {
	Name     string `json:"name" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Location string `json:"location" binding:"required"`
}

// vehicleUpdateInput accepts any subset of the vehicle fields.
type vehicleUpdateInput struct {
	Name     *string `json:"name"`
	Status   *string `json:"status"`
	Location *string `json:"location"`
}

type vehicleResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

func toVehicleResponse(v *models.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:        v.ID,
		Name:      v.Name,
		Status:    v.Status,
		Location:  v.Location,
		CreatedAt: v.CreatedAt,
	}
}

func (vc *VehicleController) Create(c *gin.Context) {
	var input vehicleInput
	if !bindJSON(c, &input) {
		return
	}

	vehicle := models.Vehicle{Name: input.Name, Status: input.Status, Location: input.Location}
	if err := vc.store.Vehicles().Create(&vehicle); err != nil {
		storageError(c, "creating the vehicle", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vehicle created successfully", "vehicle_id": vehicle.ID})
}

func (vc *VehicleController) Get(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	vehicle, err := vc.store.Vehicles().Get(id)
	if err != nil {
		respondStoreError(c, "Vehicle", "fetching the vehicle", err)
		return
	}

	c.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

func (vc *VehicleController) List(c *gin.Context) {
	vehicles, err := vc.store.Vehicles().List()
	if err != nil {
		storageError(c, "fetching vehicles", err)
		return
	}

	out := make([]vehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, toVehicleResponse(&vehicles[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (vc *VehicleController) Update(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	var input vehicleUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Status != nil {
		fields["status"] = *input.Status
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"body": "No updatable fields provided."}})
		return
	}

	if err := vc.store.Vehicles().Updates(id, fields); err != nil {
		respondStoreError(c, "Vehicle", "updating the vehicle", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle updated successfully"})
}

func (vc *VehicleController) Delete(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	if err := vc.store.Vehicles().Delete(id); err != nil {
		respondStoreError(c, "Vehicle", "deleting the vehicle", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}

// ListMaintenance returns the maintenance history for one vehicle.
func (vc *VehicleController) ListMaintenance(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	if _, err := vc.store.Vehicles().Get(id); err != nil {
		respondStoreError(c, "Vehicle", "fetching maintenance tasks", err)
		return
	}

	tasks, err := vc.store.Maintenance().List(store.Where("vehicle_id", id))
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
