package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/usecase/swipe"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{swipeUseCase: swipeUseCase}
}

// SwipeRequest represents a swipe submission
type SwipeRequest struct {
	UserID      string `json:"userId"`
	CharacterID string `json:"characterId" binding:"required"`
	Direction   string `json:"direction" binding:"required,oneof=left right up"`
}

// CreateSwipe handles POST /swipes
// @Summary Record a swipe
// @Description Record a directional swipe; right/up swipes may match
// @Tags swipes
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /swipes [post]
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing characterId or direction")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = domain.DefaultUserID
	}

	result, err := h.swipeUseCase.CreateSwipe(c.Request.Context(), userID, req.CharacterID, domain.SwipeDirection(req.Direction))
	if err != nil {
		fmt.Printf("Error processing swipe: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to process swipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"swipe": gin.H{
			"characterId": result.Swipe.CharacterID,
			"direction":   result.Swipe.Direction,
		},
		"isMatch": result.IsMatch,
		"match":   result.Match,
	})
}

// GetSwipes handles GET /swipes
// @Summary List swipes
// @Description Get a user's full swipe log
// @Tags swipes
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /swipes [get]
func (h *SwipeHandler) GetSwipes(c *gin.Context) {
	userID := c.DefaultQuery("userId", domain.DefaultUserID)

	swipes, err := h.swipeUseCase.GetUserSwipes(c.Request.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching swipes: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch swipes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"swipes":  swipes,
	})
}
