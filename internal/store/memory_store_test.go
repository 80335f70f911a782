package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetops/internal/models"
)

func TestMemoryCreateAssignsIdentity(t *testing.T) {
	s := NewMemoryStore()

	first := models.Vehicle{Name: "V1", Status: "active"}
	second := models.Vehicle{Name: "V2", Status: "active"}
	require.NoError(t, s.Vehicles().Create(&first))
	require.NoError(t, s.Vehicles().Create(&second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.False(t, first.UpdatedAt.IsZero())
}

func TestMemoryGetMissing(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Vehicles().Get(1)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Vehicles().Updates(1, map[string]any{"name": "x"}), ErrNotFound)
	assert.ErrorIs(t, s.Vehicles().Delete(1), ErrNotFound)
}

func TestMemoryWhereFilter(t *testing.T) {
	s := NewMemoryStore()
	for _, vehicleID := range []uint{1, 1, 2} {
		require.NoError(t, s.Trips().Create(&models.Trip{VehicleID: vehicleID, StartLocation: "A"}))
	}

	trips, err := s.Trips().List(Where("vehicle_id", uint(1)))
	require.NoError(t, err)
	assert.Len(t, trips, 2)

	_, err = s.Trips().First(Where("vehicle_id", uint(9)))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUnsetFilter(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Alerts().Create(&models.Alert{VehicleID: 1, Message: "open"}))
	resolved := time.Now().UTC()
	require.NoError(t, s.Alerts().Create(&models.Alert{VehicleID: 1, Message: "closed", ResolvedAt: &resolved}))

	alerts, err := s.Alerts().List(Unset("resolved_at"))
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "open", alerts[0].Message)
}

func TestMemoryNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	for _, action := range []string{"first", "second", "third"} {
		require.NoError(t, s.ActivityLogs().Create(&models.ActivityLog{UserID: 1, Action: action}))
	}

	entries, err := s.ActivityLogs().List(NewestFirst())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Action)
	assert.Equal(t, "first", entries[2].Action)
}

func TestMemoryUniqueColumns(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Users().Create(&models.User{Username: "alice", Email: "a@example.com", Password: "x"}))

	err := s.Users().Create(&models.User{Username: "alice", Email: "b@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
	err = s.Users().Create(&models.User{Username: "bob", Email: "a@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, s.Roles().Create(&models.Role{Name: "admin"}))
	assert.ErrorIs(t, s.Roles().Create(&models.Role{Name: "admin"}), ErrDuplicate)

	// renaming onto a taken value is rejected the same way
	require.NoError(t, s.Roles().Create(&models.Role{Name: "viewer"}))
	assert.ErrorIs(t, s.Roles().Updates(2, map[string]any{"name": "admin"}), ErrDuplicate)
	require.NoError(t, s.Roles().Updates(2, map[string]any{"name": "viewer"}))
}

func TestMemoryUpdatesPointerColumns(t *testing.T) {
	s := NewMemoryStore()
	role := models.Role{Name: "admin"}
	require.NoError(t, s.Roles().Create(&role))
	require.NoError(t, s.Users().Create(&models.User{Username: "alice", Email: "a@example.com", Password: "x"}))
	roleID := role.ID

	require.NoError(t, s.Users().Updates(1, map[string]any{"role_id": roleID}))
	user, err := s.Users().Get(1)
	require.NoError(t, err)
	require.NotNil(t, user.RoleID)
	assert.Equal(t, roleID, *user.RoleID)

	require.NoError(t, s.Users().Updates(1, map[string]any{"role_id": nil}))
	user, err = s.Users().Get(1)
	require.NoError(t, err)
	assert.Nil(t, user.RoleID)
}

func TestMemoryUpdatesTimeColumns(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Trips().Create(&models.Trip{VehicleID: 1, StartLocation: "A"}))

	ended := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Trips().Updates(1, map[string]any{
		"end_location": "B",
		"end_time":     ended,
	}))

	trip, err := s.Trips().Get(1)
	require.NoError(t, err)
	require.NotNil(t, trip.EndTime)
	assert.True(t, trip.EndTime.Equal(ended))
	require.NotNil(t, trip.EndLocation)
	assert.Equal(t, "B", *trip.EndLocation)
}

func TestMemoryDeleteRemovesRow(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Fleets().Create(&models.Fleet{Name: "North"}))
	require.NoError(t, s.Fleets().Create(&models.Fleet{Name: "South"}))

	require.NoError(t, s.Fleets().Delete(1))
	fleets, err := s.Fleets().List()
	require.NoError(t, err)
	require.Len(t, fleets, 1)
	assert.Equal(t, "South", fleets[0].Name)

	// ids are never reused
	third := models.Fleet{Name: "East"}
	require.NoError(t, s.Fleets().Create(&third))
	assert.Equal(t, uint(3), third.ID)
}

func TestMemoryTransactionSeesOwnWrites(t *testing.T) {
	s := NewMemoryStore()

	err := s.Transaction(func(tx Store) error {
		if err := tx.Stations().Create(&models.Station{Name: "A", Capacity: 10, CurrentBikes: 5}); err != nil {
			return err
		}
		station, err := tx.Stations().Get(1, ForUpdate())
		if err != nil {
			return err
		}
		return tx.Stations().Updates(station.ID, map[string]any{"current_bikes": 7})
	})
	require.NoError(t, err)

	station, err := s.Stations().Get(1)
	require.NoError(t, err)
	assert.Equal(t, 7, station.CurrentBikes)
}

func TestColumnNaming(t *testing.T) {
	cases := map[string]string{
		"ID":            "id",
		"VehicleID":     "vehicle_id",
		"CreatedAt":     "created_at",
		"RuleType":      "rule_type",
		"CurrentBikes":  "current_bikes",
		"StartLocation": "start_location",
	}
	for in, want := range cases {
		assert.Equal(t, want, toSnake(in), in)
	}
}
