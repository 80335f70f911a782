package models

import "gorm.io/gorm"

type PricingRule struct {
	gorm.Model
	Name          string  `json:"name"`
	RuleType      string  `json:"rule_type" gorm:"unique"` // "base" or "surge", one rule per type
	PriceModifier float64 `json:"price_modifier"`
	Conditions    string  `json:"conditions"` // JSON object, empty for base rules
}
