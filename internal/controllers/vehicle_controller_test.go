package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleLifecycle(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", gin.H{
		"name": "V1", "status": "active", "location": "Depot",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, "Vehicle created successfully", body["message"])
	assert.EqualValues(t, 1, body["vehicle_id"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/vehicles/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	vehicle := decodeMap(t, w)
	assert.Equal(t, "V1", vehicle["name"])
	assert.Equal(t, "active", vehicle["status"])
	assert.Equal(t, "Depot", vehicle["location"])
	assert.NotEmpty(t, vehicle["created_at"])

	w = doJSON(t, r, http.MethodPatch, "/api/v1/vehicles/1", gin.H{"status": "maintenance"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/vehicles/1", nil)
	vehicle = decodeMap(t, w)
	assert.Equal(t, "maintenance", vehicle["status"])
	assert.Equal(t, "V1", vehicle["name"]) // untouched fields survive a partial update

	w = doJSON(t, r, http.MethodDelete, "/api/v1/vehicles/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/vehicles/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVehicleNotFound(t *testing.T) {
	r := newRouter()

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := doJSON(t, r, method, "/api/v1/vehicles/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
	w := doJSON(t, r, http.MethodPatch, "/api/v1/vehicles/99", gin.H{"status": "idle"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVehicleListReadsAreIdempotent(t *testing.T) {
	r := newRouter()
	createVehicle(t, r)
	createVehicle(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/v1/vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeList(t, w)

	w = doJSON(t, r, http.MethodGet, "/api/v1/vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first, decodeList(t, w))
	assert.Len(t, first, 2)
}

func TestVehicleValidationPrecedesPersistence(t *testing.T) {
	r := newRouter()
	createVehicle(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/v1/vehicles", gin.H{"name": "V2"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	details := decodeMap(t, w)["details"].(map[string]any)
	assert.Contains(t, details, "status")
	assert.Contains(t, details, "location")

	w = doJSON(t, r, http.MethodGet, "/api/v1/vehicles", nil)
	assert.Len(t, decodeList(t, w), 1) // nothing was written
}
