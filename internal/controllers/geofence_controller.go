package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type GeofenceController struct {
	store store.Store
}

func NewGeofenceController(s store.Store) *GeofenceController {
	return &GeofenceController{store: s}
}

type geofenceInput struct {
	Name        string `json:"name" binding:"required"`
	Coordinates string `json:"coordinates" binding:"required"` // JSON string
}

type geofenceUpdateInput struct {
	Name        *string `json:"name"`
	Coordinates *string `json:"coordinates"`
}

type geofenceResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Coordinates json.RawMessage `json:"coordinates"`
	CreatedAt   time.Time       `json:"created_at"`
}

func toGeofenceResponse(g *models.Geofence) geofenceResponse {
	return geofenceResponse{
		ID:          g.ID,
		Name:        g.Name,
		Coordinates: json.RawMessage(g.Coordinates),
		CreatedAt:   g.CreatedAt,
	}
}

// validateCoordinates accepts either a GeoJSON geometry document or a bare
// JSON array of [lon, lat] positions. Anything else is rejected before the
// store is touched.
func validateCoordinates(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") {
		var g geom.T
		return gjson.Unmarshal([]byte(trimmed), &g)
	}

	var coords []geom.Coord
	if err := json.Unmarshal([]byte(trimmed), &coords); err != nil {
		return err
	}
	if len(coords) == 0 {
		return errors.New("coordinates cannot be empty")
	}
	for _, coord := range coords {
		if len(coord) < 2 {
			return errors.New("each coordinate needs at least two components")
		}
	}
	if len(coords) >= 2 {
		if _, err := geom.NewLineString(geom.XY).SetCoords(coords); err != nil {
			return err
		}
	}
	return nil
}

func (gc *GeofenceController) Create(c *gin.Context) {
	var input geofenceInput
	if !bindJSON(c, &input) {
		return
	}

	if err := validateCoordinates(input.Coordinates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates format"})
		return
	}

	geofence := models.Geofence{Name: input.Name, Coordinates: input.Coordinates}
	if err := gc.store.Geofences().Create(&geofence); err != nil {
		storageError(c, "creating the geofence", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Geofence created successfully", "geofence_id": geofence.ID})
}

func (gc *GeofenceController) Get(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	geofence, err := gc.store.Geofences().Get(id)
	if err != nil {
		respondStoreError(c, "Geofence", "fetching the geofence", err)
		return
	}

	c.JSON(http.StatusOK, toGeofenceResponse(geofence))
}

func (gc *GeofenceController) List(c *gin.Context) {
	geofences, err := gc.store.Geofences().List()
	if err != nil {
		storageError(c, "fetching geofences", err)
		return
	}

	out := make([]geofenceResponse, 0, len(geofences))
	for i := range geofences {
		out = append(out, toGeofenceResponse(&geofences[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (gc *GeofenceController) Update(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	var input geofenceUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Coordinates != nil {
		if err := validateCoordinates(*input.Coordinates); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates format"})
			return
		}
		fields["coordinates"] = *input.Coordinates
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"body": "No updatable fields provided."}})
		return
	}

	if err := gc.store.Geofences().Updates(id, fields); err != nil {
		respondStoreError(c, "Geofence", "updating the geofence", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Geofence updated successfully"})
}

func (gc *GeofenceController) Delete(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	if err := gc.store.Geofences().Delete(id); err != nil {
		respondStoreError(c, "Geofence", "deleting the geofence", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Geofence deleted successfully"})
}
