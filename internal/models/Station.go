package models

import "gorm.io/gorm"

type Station struct {
	gorm.Model
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	CurrentBikes int    `json:"current_bikes"`
}
