package models

import (
	"time"

	"gorm.io/gorm"
)

type Alert struct {
	gorm.Model
	VehicleID  uint       `json:"vehicle_id"`
	Message    string     `json:"message"`
	ResolvedAt *time.Time `json:"resolved_at"` // nil while the alert is open
}
