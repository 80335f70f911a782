package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"fleetops/internal/middleware"
	"fleetops/internal/models"
	"fleetops/internal/store"
)

type AuthController struct {
	store store.Store
}

func NewAuthController(s store.Store) *AuthController {
	return &AuthController{store: s}
}

type registerInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      *string   `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Register creates a new user. The password is stored as a bcrypt hash and
// never serialized back.
func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if !bindJSON(c, &input) {
		return
	}

	var roleID *uint
	if input.Role != "" {
		role, err := ac.store.Roles().First(store.Where("name", input.Role))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				notFound(c, "Role")
				return
			}
			storageError(c, "registering the user", err)
			return
		}
		roleID = &role.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hash),
		RoleID:   roleID,
	}
	if err := ac.store.Users().Create(&user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already in use"})
			return
		}
		storageError(c, "registering the user", err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, input.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user_id": user.ID,
		"token":   token,
	})
}

// Login checks the password hash. Invalid credentials are a 400 with no hint
// of whether the username exists.
func (ac *AuthController) Login(c *gin.Context) {
	var input loginInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := ac.store.Users().First(store.Where("username", input.Username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		storageError(c, "logging in", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	roleName := ac.roleName(user)
	var roleClaim string
	if roleName != nil {
		roleClaim = *roleName
	}

	token, err := middleware.GenerateToken(user.ID, roleClaim)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"user_id": user.ID,
		"role":    roleName,
		"token":   token,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}

// Me returns the authenticated user's details.
func (ac *AuthController) Me(c *gin.Context) {
	userID := uint(c.MustGet("user_id").(float64))

	user, err := ac.store.Users().Get(userID)
	if err != nil {
		respondStoreError(c, "User", "fetching user details", err)
		return
	}

	c.JSON(http.StatusOK, ac.toUserResponse(user))
}

func (ac *AuthController) toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      ac.roleName(user),
		CreatedAt: user.CreatedAt,
	}
}

func (ac *AuthController) roleName(user *models.User) *string {
	if user.RoleID == nil {
		return nil
	}
	role, err := ac.store.Roles().Get(*user.RoleID)
	if err != nil {
		return nil
	}
	return &role.Name
}
