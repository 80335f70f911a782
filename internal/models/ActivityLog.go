package models

import "gorm.io/gorm"

type ActivityLog struct {
	gorm.Model
	UserID uint   `json:"user_id"`
	Action string `json:"action"`
}
