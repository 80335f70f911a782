package models

import "gorm.io/gorm"

type Report struct {
	gorm.Model
	Type    string `json:"type"` // e.g. "usage"
	Content string `json:"content"` // validated JSON, stored verbatim
}
