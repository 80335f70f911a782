package models

import "gorm.io/gorm"

type Invoice struct {
	gorm.Model
	UserID      uint    `json:"user_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Status      string  `json:"status"` // "Pending" or "Paid"
}
