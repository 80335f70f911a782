package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type StationController struct {
	store store.Store
}

func NewStationController(s store.Store) *StationController {
	return &StationController{store: s}
}

type stationInput struct {
	Name         string `json:"name" binding:"required"`
	Capacity     *int   `json:"capacity" binding:"required"`
	CurrentBikes *int   `json:"current_bikes" binding:"required"`
}

type stationUpdateInput struct {
	Name         *string `json:"name"`
	Capacity     *int    `json:"capacity"`
	CurrentBikes *int    `json:"current_bikes"`
}

type transferInput struct {
	FromStationID uint `json:"from_station_id" binding:"required"`
	ToStationID   uint `json:"to_station_id" binding:"required"`
	Count         int  `json:"count" binding:"required,gt=0"`
}

type stationResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	CurrentBikes int    `json:"current_bikes"`
}

func toStationResponse(s *models.Station) stationResponse {
	return stationResponse{ID: s.ID, Name: s.Name, Capacity: s.Capacity, CurrentBikes: s.CurrentBikes}
}

var (
	errNotEnoughBikes = errors.New("Not enough bikes at the source station")
	errOverCapacity   = errors.New("Destination station does not have enough capacity")
)

func checkStationBounds(capacity, bikes int) error {
	if capacity < 0 {
		return errors.New("capacity must not be negative")
	}
	if bikes < 0 || bikes > capacity {
		return errors.New("current_bikes must be between 0 and capacity")
	}
	return nil
}

func (sc *StationController) Create(c *gin.Context) {
	var input stationInput
	if !bindJSON(c, &input) {
		return
	}

	if err := checkStationBounds(*input.Capacity, *input.CurrentBikes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	station := models.Station{Name: input.Name, Capacity: *input.Capacity, CurrentBikes: *input.CurrentBikes}
	if err := sc.store.Stations().Create(&station); err != nil {
		storageError(c, "creating the station", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Station created successfully", "station_id": station.ID})
}

func (sc *StationController) Get(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	station, err := sc.store.Stations().Get(id)
	if err != nil {
		respondStoreError(c, "Station", "fetching the station", err)
		return
	}

	c.JSON(http.StatusOK, toStationResponse(station))
}

func (sc *StationController) List(c *gin.Context) {
	stations, err := sc.store.Stations().List()
	if err != nil {
		storageError(c, "fetching stations", err)
		return
	}

	out := make([]stationResponse, 0, len(stations))
	for i := range stations {
		out = append(out, toStationResponse(&stations[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (sc *StationController) Update(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	var input stationUpdateInput
	if !bindJSON(c, &input) {
		return
	}

	station, err := sc.store.Stations().Get(id)
	if err != nil {
		respondStoreError(c, "Station", "updating the station", err)
		return
	}

	capacity := station.Capacity
	bikes := station.CurrentBikes
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Capacity != nil {
		capacity = *input.Capacity
		fields["capacity"] = capacity
	}
	if input.CurrentBikes != nil {
		bikes = *input.CurrentBikes
		fields["current_bikes"] = bikes
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": gin.H{"body": "No updatable fields provided."}})
		return
	}
	if err := checkStationBounds(capacity, bikes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := sc.store.Stations().Updates(id, fields); err != nil {
		respondStoreError(c, "Station", "updating the station", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Station updated successfully"})
}

func (sc *StationController) Delete(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	if err := sc.store.Stations().Delete(id); err != nil {
		respondStoreError(c, "Station", "deleting the station", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Station deleted successfully"})
}

// Transfer moves count bikes between stations atomically. Both rows are
// locked, lower id first, so concurrent transfers serialize instead of
// deadlocking, and the system-wide bike total is preserved.
func (sc *StationController) Transfer(c *gin.Context) {
	var input transferInput
	if !bindJSON(c, &input) {
		return
	}

	if input.FromStationID == input.ToStationID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Source and destination stations must differ"})
		return
	}

	err := sc.store.Transaction(func(s store.Store) error {
		firstID, secondID := input.FromStationID, input.ToStationID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		if _, err := s.Stations().Get(firstID, store.ForUpdate()); err != nil {
			return err
		}
		if _, err := s.Stations().Get(secondID, store.ForUpdate()); err != nil {
			return err
		}

		from, err := s.Stations().Get(input.FromStationID)
		if err != nil {
			return err
		}
		to, err := s.Stations().Get(input.ToStationID)
		if err != nil {
			return err
		}

		if from.CurrentBikes < input.Count {
			return errNotEnoughBikes
		}
		if to.CurrentBikes+input.Count > to.Capacity {
			return errOverCapacity
		}

		if err := s.Stations().Updates(from.ID, map[string]any{"current_bikes": from.CurrentBikes - input.Count}); err != nil {
			return err
		}
		return s.Stations().Updates(to.ID, map[string]any{"current_bikes": to.CurrentBikes + input.Count})
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			notFound(c, "Station")
		case errors.Is(err, errNotEnoughBikes), errors.Is(err, errOverCapacity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			storageError(c, "rebalancing bikes", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bikes rebalanced successfully"})
}
