package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasePriceUpsert(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/pricing/base", gin.H{"base_price": 2.5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Base price set successfully", decodeMap(t, w)["message"])

	// setting it again replaces the existing rule instead of adding one
	w = doJSON(t, r, http.MethodPost, "/api/v1/pricing/base", gin.H{"base_price": 3.0})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/pricing/rules", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rules := decodeList(t, w)
	require.Len(t, rules, 1)
	assert.Equal(t, "base", rules[0]["rule_type"])
	assert.EqualValues(t, 3.0, rules[0]["price_modifier"])
}

func TestSurgePricing(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/pricing/surge", gin.H{
		"multiplier": 1.8,
		"conditions": gin.H{"time_of_day": "peak", "min_demand": 50},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/pricing/rules", nil)
	rules := decodeList(t, w)
	require.Len(t, rules, 1)
	assert.Equal(t, "surge", rules[0]["rule_type"])
	conditions, ok := rules[0]["conditions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "peak", conditions["time_of_day"])
}

func TestPricingValidation(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/pricing/base", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/pricing/surge", gin.H{"multiplier": 1.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
