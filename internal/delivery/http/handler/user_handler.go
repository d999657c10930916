package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/usecase/user"
)

type UserHandler struct {
	userUseCase *user.UserUseCase
}

func NewUserHandler(userUseCase *user.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// GetUser handles GET /users
// @Summary Get user profile
// @Description Get a profile by user id, defaulting to the demo user
// @Tags users
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.DefaultQuery("userId", domain.DefaultUserID)

	u, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		fmt.Printf("Error fetching user: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u,
	})
}

// CreateUser handles POST /users
// @Summary Create user profile
// @Description Register a profile; usernames must be unique
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing username or displayName")
		return
	}

	u, err := h.userUseCase.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			respondError(c, http.StatusBadRequest, "Username already taken")
			return
		}
		fmt.Printf("Error creating user: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u,
	})
}

// UpdateUser handles PUT /users
// @Summary Update user profile
// @Description Apply a partial update; omitted fields keep their value
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.userUseCase.UpdateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		fmt.Printf("Error updating user: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u,
	})
}
