package models

import "gorm.io/gorm"

type Geofence struct {
	gorm.Model
	Name        string `json:"name"`
	Coordinates string `json:"coordinates"` // validated JSON, stored verbatim
}
