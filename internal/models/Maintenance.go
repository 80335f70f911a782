package models

import (
	"time"

	"gorm.io/gorm"
)

type Maintenance struct {
	gorm.Model
	VehicleID     uint       `json:"vehicle_id"`
	Description   string     `json:"description"`
	Status        string     `json:"status"` // "Scheduled", "In Progress", "Completed"
	ScheduledDate *time.Time `json:"scheduled_date"`
}
