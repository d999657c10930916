package chat

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"github.com/tindercoin/tindercoin-backend/internal/repository"
)

// historyWindow is how many recent log entries are forwarded to the model.
const historyWindow = 10

// ReplyGenerator produces an in-character reply from the persona and the
// recent conversation window. Satisfied by the Gemini client.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, persona domain.Persona, history []*domain.Message) (string, error)
}

// fallbackReplies is the canned pool used whenever the model is
// unconfigured, errors, or returns nothing. The chat flow never surfaces
// an error for that path.
var fallbackReplies = []string{
	`Bullish on this convo! 📈 You're definitely my type - the type that HODLs 💎`,
	`Haha nice one! 😂 You're making me more excited than a green candle day 🚀`,
	`I like the way you think, anon 🧠 WAGMI energy right here!`,
	`Wen date tho? 👀 I promise I won't rug pull... unless it's to wrap you in a hug 💕`,
	`You've got diamond hand energy and I'm here for it 💎🙌`,
	`NFA but I think we might be a good match 😏 What's your moon mission plan?`,
	`*checks portfolio* Still red but talking to you makes everything green 💚`,
	`Are you a 100x gem? Because you just made my heart pump 📈`,
	`Let's be honest, we're both here because we're too degen to use normal dating apps 😂`,
	`My wallet might be empty but my heart is full when I talk to you 💕`,
	`You had me at "diamond hands" 💎😍`,
	`Is this the bottom? Because I'm ready to ape in... to this conversation 🦍`,
}

// FallbackReplies exposes the canned pool (read-only) for callers that
// need to recognise it, e.g. tests.
func FallbackReplies() []string {
	replies := make([]string, len(fallbackReplies))
	copy(replies, fallbackReplies)
	return replies
}

type ChatUseCase struct {
	convRepo repository.ConversationRepository
	llm      ReplyGenerator
}

// NewChatUseCase wires the conversation log with an optional reply
// generator. A nil generator means every reply comes from the fallback
// pool.
func NewChatUseCase(convRepo repository.ConversationRepository, llm ReplyGenerator) *ChatUseCase {
	return &ChatUseCase{
		convRepo: convRepo,
		llm:      llm,
	}
}

// SendMessage appends the user's message to the conversation log,
// generates the character's reply, appends it under the assistant role
// and returns it. A duplicate submission produces a duplicate log entry
// and a second model call; there is no idempotency key.
func (uc *ChatUseCase) SendMessage(ctx context.Context, matchID, message string, persona domain.Persona) (string, error) {
	conversationID := matchID
	if conversationID == "" {
		conversationID = "default"
	}

	userMsg := &domain.Message{Role: domain.RoleUser, Content: message}
	if err := uc.convRepo.Append(ctx, conversationID, userMsg); err != nil {
		return "", fmt.Errorf("failed to record message: %w", err)
	}

	reply := uc.generateReply(ctx, conversationID, persona)

	assistantMsg := &domain.Message{Role: domain.RoleAssistant, Content: reply}
	if err := uc.convRepo.Append(ctx, conversationID, assistantMsg); err != nil {
		return "", fmt.Errorf("failed to record reply: %w", err)
	}

	return reply, nil
}

func (uc *ChatUseCase) generateReply(ctx context.Context, conversationID string, persona domain.Persona) string {
	if uc.llm == nil {
		return fallbackReplies[rand.Intn(len(fallbackReplies))]
	}

	history, err := uc.convRepo.GetHistory(ctx, conversationID)
	if err == nil {
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}
		reply, genErr := uc.llm.GenerateReply(ctx, persona, history)
		if genErr == nil && reply != "" {
			return reply
		}
		fmt.Printf("Warning: reply generation failed, using fallback: %v\n", genErr)
	}

	return fallbackReplies[rand.Intn(len(fallbackReplies))]
}

// GetHistory returns the full log for a match, empty for unknown ids.
func (uc *ChatUseCase) GetHistory(ctx context.Context, matchID string) ([]*domain.Message, error) {
	conversationID := matchID
	if conversationID == "" {
		conversationID = "default"
	}

	history, err := uc.convRepo.GetHistory(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat history: %w", err)
	}
	return history, nil
}
