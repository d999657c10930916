package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tindercoin/tindercoin-backend/internal/catalog"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
)

type CharacterHandler struct {
	catalog *catalog.Catalog
}

func NewCharacterHandler(cat *catalog.Catalog) *CharacterHandler {
	return &CharacterHandler{catalog: cat}
}

// GetCharacters handles GET /characters
// @Summary List characters
// @Description Get the full swipeable character catalog
// @Tags characters
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /characters [get]
func (h *CharacterHandler) GetCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"characters": h.catalog.List(),
	})
}

// CreateCharacterRequest represents a submitted character card. The
// catalog is immutable, so the card is validated and echoed back without
// being stored.
type CreateCharacterRequest struct {
	ID             string `json:"id" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Age            int    `json:"age"`
	Bio            string `json:"bio"`
	ImageURL       string `json:"image_url"`
	Trait          string `json:"trait"`
	DistanceBlocks int    `json:"distance_blocks"`
	Occupation     string `json:"occupation"`
}

// CreateCharacter handles POST /characters
// @Summary Submit a character
// @Description Validate a character card (not persisted)
// @Tags characters
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /characters [post]
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var req CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"character": domain.Character{
			ID:             req.ID,
			Name:           req.Name,
			Age:            req.Age,
			Bio:            req.Bio,
			ImageURL:       req.ImageURL,
			Trait:          req.Trait,
			DistanceBlocks: req.DistanceBlocks,
			Occupation:     req.Occupation,
		},
	})
}
