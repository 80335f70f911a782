package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeofenceRoundTrip(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/geofences", gin.H{
		"name":        "Downtown",
		"coordinates": "[[36.8, -1.29], [36.82, -1.3], [36.81, -1.28]]",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 1, decodeMap(t, w)["geofence_id"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/geofences/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	geofence := decodeMap(t, w)
	assert.Equal(t, "Downtown", geofence["name"])
	// coordinates come back as structured data, not a string
	coords, ok := geofence["coordinates"].([]any)
	require.True(t, ok)
	assert.Len(t, coords, 3)
}

func TestGeofenceAcceptsGeoJSON(t *testing.T) {
	r := newRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/geofences", gin.H{
		"name":        "Airport",
		"coordinates": `{"type":"Point","coordinates":[36.93,-1.32]}`,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGeofenceRejectsMalformedCoordinates(t *testing.T) {
	r := newRouter()

	for _, coords := range []string{"not json", "[]", "[[1]]", `{"type":"Nope"}`} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/geofences", gin.H{
			"name": "Bad", "coordinates": coords,
		})
		require.Equal(t, http.StatusBadRequest, w.Code, "coordinates %q", coords)
		assert.Equal(t, "Invalid coordinates format", decodeMap(t, w)["error"])
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/geofences", nil)
	assert.Empty(t, decodeList(t, w)) // nothing was persisted
}

func TestGeofenceUpdateAndDelete(t *testing.T) {
	r := newRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/geofences", gin.H{
		"name": "Downtown", "coordinates": "[[36.8, -1.29], [36.82, -1.3]]",
	})

	w := doJSON(t, r, http.MethodPatch, "/api/v1/geofences/1", gin.H{"name": "CBD"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/geofences/1", gin.H{"coordinates": "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/geofences/1", nil)
	assert.Equal(t, "CBD", decodeMap(t, w)["name"])

	w = doJSON(t, r, http.MethodDelete, "/api/v1/geofences/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/geofences/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
