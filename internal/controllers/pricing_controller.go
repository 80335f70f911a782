package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type PricingController struct {
	store store.Store
}

func NewPricingController(s store.Store) *PricingController {
	return &PricingController{store: s}
}

type basePriceInput struct {
	BasePrice float64 `json:"base_price" binding:"required"`
}

type surgePricingInput struct {
	Multiplier float64        `json:"multiplier" binding:"required"`
	Conditions map[string]any `json:"conditions" binding:"required"`
}

type pricingRuleResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	RuleType      string          `json:"rule_type"`
	PriceModifier float64         `json:"price_modifier"`
	Conditions    json.RawMessage `json:"conditions"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SetBasePrice upserts the single base-price rule.
func (pc *PricingController) SetBasePrice(c *gin.Context) {
	var input basePriceInput
	if !bindJSON(c, &input) {
		return
	}

	if err := pc.upsertRule("Base Price", "base", input.BasePrice, ""); err != nil {
		storageError(c, "setting the base price", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Base price set successfully"})
}

// SetSurgePricing upserts the single surge rule with its condition map.
func (pc *PricingController) SetSurgePricing(c *gin.Context) {
	var input surgePricingInput
	if !bindJSON(c, &input) {
		return
	}

	conditions, err := json.Marshal(input.Conditions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conditions format"})
		return
	}

	if err := pc.upsertRule("Surge Pricing", "surge", input.Multiplier, string(conditions)); err != nil {
		storageError(c, "setting surge pricing rules", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Surge pricing rules set successfully"})
}

// upsertRule keeps at most one rule per type.
func (pc *PricingController) upsertRule(name, ruleType string, modifier float64, conditions string) error {
	return pc.store.Transaction(func(s store.Store) error {
		rule, err := s.PricingRules().First(store.Where("rule_type", ruleType), store.ForUpdate())
		if errors.Is(err, store.ErrNotFound) {
			return s.PricingRules().Create(&models.PricingRule{
				Name:          name,
				RuleType:      ruleType,
				PriceModifier: modifier,
				Conditions:    conditions,
			})
		}
		if err != nil {
			return err
		}
		return s.PricingRules().Updates(rule.ID, map[string]any{
			"price_modifier": modifier,
			"conditions":     conditions,
		})
	})
}

func (pc *PricingController) ListRules(c *gin.Context) {
	rules, err := pc.store.PricingRules().List()
	if err != nil {
		storageError(c, "fetching pricing rules", err)
		return
	}

	out := make([]pricingRuleResponse, 0, len(rules))
	for _, rule := range rules {
		resp := pricingRuleResponse{
			ID:            rule.ID,
			Name:          rule.Name,
			RuleType:      rule.RuleType,
			PriceModifier: rule.PriceModifier,
			CreatedAt:     rule.CreatedAt,
		}
		if rule.Conditions != "" {
			resp.Conditions = json.RawMessage(rule.Conditions)
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}
