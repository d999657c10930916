package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// GetMatches handles GET /matches
// @Summary List matches
// @Description Get a user's matches enriched with catalog characters
// @Tags matches
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID := c.DefaultQuery("userId", domain.DefaultUserID)

	matches, err := h.matchUseCase.GetUserMatches(c.Request.Context(), userID)
	if err != nil {
		fmt.Printf("Error fetching matches: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
	})
}

// CreateMatchRequest represents a direct match creation
type CreateMatchRequest struct {
	UserID      string `json:"userId"`
	CharacterID string `json:"characterId" binding:"required"`
	Location    string `json:"location"`
}

// CreateMatch handles POST /matches
// @Summary Create a match
// @Description Append a match directly, e.g. for a simulated match
// @Tags matches
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing characterId")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = domain.DefaultUserID
	}

	created, err := h.matchUseCase.CreateMatch(c.Request.Context(), userID, req.CharacterID, req.Location)
	if err != nil {
		fmt.Printf("Error creating match: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to create match")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"match":   created,
	})
}
