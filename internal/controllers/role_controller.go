package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type RoleController struct {
	store store.Store
}

func NewRoleController(s store.Store) *RoleController {
	return &RoleController{store: s}
}

type roleInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type roleResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (rc *RoleController) List(c *gin.Context) {
	roles, err := rc.store.Roles().List()
	if err != nil {
		storageError(c, "fetching roles", err)
		return
	}

	out := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, roleResponse{ID: role.ID, Name: role.Name, Description: role.Description})
	}
	c.JSON(http.StatusOK, out)
}

func (rc *RoleController) Create(c *gin.Context) {
	var input roleInput
	if !bindJSON(c, &input) {
		return
	}

	role := models.Role{Name: input.Name, Description: input.Description}
	if err := rc.store.Roles().Create(&role); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "role name already in use"})
			return
		}
		storageError(c, "creating the role", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Role created successfully", "role_id": role.ID})
}

func (rc *RoleController) Update(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	var input roleInput
	if !bindJSON(c, &input) {
		return
	}

	err := rc.store.Roles().Updates(id, map[string]any{
		"name":        input.Name,
		"description": input.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "role name already in use"})
			return
		}
		respondStoreError(c, "Role", "updating the role", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
}

func (rc *RoleController) Delete(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}

	if err := rc.store.Roles().Delete(id); err != nil {
		respondStoreError(c, "Role", "deleting the role", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role deleted successfully"})
}
