package models

import (
	"time"

	"gorm.io/gorm"
)

type Trip struct {
	gorm.Model
	VehicleID     uint       `json:"vehicle_id"`
	StartLocation string     `json:"start_location"`
	EndLocation   *string    `json:"end_location"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time"` // nil while the trip is active
}
