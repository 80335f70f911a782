package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type UserController struct {
	store store.Store
	auth  *AuthController
}

func NewUserController(s store.Store) *UserController {
	return &UserController{store: s, auth: NewAuthController(s)}
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.store.Users().List()
	if err != nil {
		storageError(c, "fetching users", err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, uc.auth.toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (uc *UserController) Get(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	user, err := uc.store.Users().Get(id)
	if err != nil {
		respondStoreError(c, "User", "fetching the user", err)
		return
	}

	c.JSON(http.StatusOK, uc.auth.toUserResponse(user))
}

// AssignRole sets the user's role reference. Repeating the call with the same
// role is a no-op with the same response.
func (uc *UserController) AssignRole(c *gin.Context) {
	userID := parseID(c, "id")
	if userID == 0 {
		return
	}
	roleID := parseID(c, "roleID")
	if roleID == 0 {
		return
	}

	if _, err := uc.store.Users().Get(userID); err != nil {
		respondStoreError(c, "User", "assigning the role", err)
		return
	}
	role, err := uc.store.Roles().Get(roleID)
	if err != nil {
		respondStoreError(c, "Role", "assigning the role", err)
		return
	}

	if err := uc.store.Users().Updates(userID, map[string]any{"role_id": roleID}); err != nil {
		respondStoreError(c, "User", "assigning the role", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role " + role.Name + " assigned successfully"})
}

// RemoveRole clears the user's role reference. Removing an unassigned role is
// still a success.
func (uc *UserController) RemoveRole(c *gin.Context) {
	userID := parseID(c, "id")
	if userID == 0 {
		return
	}
	roleID := parseID(c, "roleID")
	if roleID == 0 {
		return
	}

	if _, err := uc.store.Users().Get(userID); err != nil {
		respondStoreError(c, "User", "removing the role", err)
		return
	}
	if _, err := uc.store.Roles().Get(roleID); err != nil {
		respondStoreError(c, "Role", "removing the role", err)
		return
	}

	if err := uc.store.Users().Updates(userID, map[string]any{"role_id": nil}); err != nil {
		respondStoreError(c, "User", "removing the role", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role removed successfully"})
}

type activityInput struct {
	UserID uint   `json:"user_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

type activityResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// LogActivity appends to the per-user activity log.
func (uc *UserController) LogActivity(c *gin.Context) {
	var input activityInput
	if !bindJSON(c, &input) {
		return
	}

	if _, err := uc.store.Users().Get(input.UserID); err != nil {
		respondStoreError(c, "User", "logging the activity", err)
		return
	}

	entry := models.ActivityLog{UserID: input.UserID, Action: input.Action}
	if err := uc.store.ActivityLogs().Create(&entry); err != nil {
		storageError(c, "logging the activity", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Activity logged successfully", "activity_id": entry.ID})
}

// ListActivity returns the log for one user, newest first.
func (uc *UserController) ListActivity(c *gin.Context) {
	raw := c.Query("user_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	userID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id parameter"})
		return
	}

	if _, err := uc.store.Users().Get(uint(userID)); err != nil {
		respondStoreError(c, "User", "fetching the activity log", err)
		return
	}

	entries, err := uc.store.ActivityLogs().List(store.Where("user_id", uint(userID)), store.NewestFirst())
	if err != nil {
		storageError(c, "fetching the activity log", err)
		return
	}

	out := make([]activityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Action:    e.Action,
			Timestamp: e.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}
