package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type AlertController struct {
	store store.Store
}

func NewAlertController(s store.Store) *AlertController {
	return &AlertController{store: s}
}

type alertInput struct {
	VehicleID uint   `json:"vehicle_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type alertResponse struct {
	ID         uint       `json:"id"`
	VehicleID  uint       `json:"vehicle_id"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

func toAlertResponse(a *models.Alert) alertResponse {
	return alertResponse{
		ID:         a.ID,
		VehicleID:  a.VehicleID,
		Message:    a.Message,
		CreatedAt:  a.CreatedAt,
		ResolvedAt: a.ResolvedAt,
	}
}

func (ac *AlertController) Create(c *gin.Context) {
	var input alertInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := ac.store.Vehicles().Get(input.VehicleID); err != nil {
		respondStoreError(c, "Vehicle", "creating the alert", err)
		return
	}

	alert := models.Alert{VehicleID: input.VehicleID, Message: input.Message}
	if err := ac.store.Alerts().Create(&alert); err != nil {
		storageError(c, "creating the alert", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Alert created successfully", "alert_id": alert.ID})
}

// List returns open alerts only; resolved ones drop out of the feed.
func (ac *AlertController) List(c *gin.Context) {
	alerts, err := ac.store.Alerts().List(store.Unset("resolved_at"))
	if err != nil {
		storageError(c, "fetching alerts", err)
		return
	}

	out := make([]alertResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, toAlertResponse(&alerts[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Resolve closes an alert exactly once.
func (ac *AlertController) Resolve(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	alert, err := ac.store.Alerts().Get(id)
	if err != nil {
		respondStoreError(c, "Alert", "resolving the alert", err)
		return
	}

	if alert.ResolvedAt != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Alert has already been resolved"})
		return
	}

	if err := ac.store.Alerts().Updates(id, map[string]any{"resolved_at": time.Now().UTC()}); err != nil {
		respondStoreError(c, "Alert", "resolving the alert", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert resolved successfully"})
}
