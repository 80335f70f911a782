package models

import "gorm.io/gorm"

type Vehicle struct {
	gorm.Model
	Name     string `json:"name"`
	Status   string `json:"status"` // "active", "maintenance", "out_of_service"
	Location string `json:"location"`
}
