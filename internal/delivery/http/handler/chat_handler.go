package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/usecase/chat"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

// CharacterInfo carries the persona the reply is generated with.
type CharacterInfo struct {
	Name  string `json:"name" binding:"required"`
	Trait string `json:"trait"`
	Bio   string `json:"bio"`
}

// ChatRequest represents an outgoing user message
type ChatRequest struct {
	MatchID       string         `json:"matchId"`
	Message       string         `json:"message" binding:"required"`
	CharacterInfo *CharacterInfo `json:"characterInfo" binding:"required"`
}

// SendMessage handles POST /chat
// @Summary Send a chat message
// @Description Append a message and get the character's reply
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /chat [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing message or characterInfo")
		return
	}

	persona := domain.Persona{
		Name:  req.CharacterInfo.Name,
		Trait: req.CharacterInfo.Trait,
		Bio:   req.CharacterInfo.Bio,
	}

	reply, err := h.chatUseCase.SendMessage(c.Request.Context(), req.MatchID, req.Message, persona)
	if err != nil {
		fmt.Printf("Error in chat: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": reply,
	})
}

// GetHistory handles GET /chat
// @Summary Get chat history
// @Description Get the full message log for a match
// @Tags chat
// @Produce json
// @Param matchId query string false "Match ID"
// @Success 200 {object} map[string]interface{}
// @Router /chat [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	matchID := c.DefaultQuery("matchId", "default")

	history, err := h.chatUseCase.GetHistory(c.Request.Context(), matchID)
	if err != nil {
		fmt.Printf("Error fetching chat history: %v\n", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"messages": history,
	})
}
