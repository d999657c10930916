package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tindercoin/tindercoin-backend/internal/domain"
	"google.golang.org/api/option"
)

// degenPersonality is the fixed tone template every character reply is
// prompted with; the per-character name/trait/bio is appended per call.
const degenPersonality = `You are a flirty, fun meme coin character on a dating app. You speak in crypto/degen slang and are very playful. You use emojis liberally. You reference:
- Moon, mooning, to the moon 🚀🌕
- Diamond hands 💎🙌, paper hands
- HODL, hodling
- Ape in, aping
- WAGMI (We're All Gonna Make It)
- NGMI (Not Gonna Make It)
- Rug pull (as relationship metaphor)
- Pump and dump (but you're NOT about that life)
- Degen, degenerate
- Lambo, wen lambo
- Floor price, all-time high
- Gas fees (as excuses)
- Bullish, bearish
- Chad, based, gigachad
- Touch grass (ironically)
- NFA (Not Financial Advice) / NRA (Not Relationship Advice)

Keep responses short (1-3 sentences), flirty, and fun. Be supportive but playful. Never be explicit or inappropriate. You're looking for a genuine connection but express it through meme culture.`

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.9)
	model.SetMaxOutputTokens(150)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateReply asks the model for the character's next line given the
// recent conversation window. The last history entry is the user's
// pending message. Errors are returned for the caller to fall back on;
// no retry is attempted.
func (c *Client) GenerateReply(ctx context.Context, persona domain.Persona, history []*domain.Message) (string, error) {
	prompt := buildPrompt(persona, history)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("empty completion")
	}
	return reply, nil
}

func buildPrompt(persona domain.Persona, history []*domain.Message) string {
	var sb strings.Builder
	sb.WriteString(degenPersonality)
	sb.WriteString(fmt.Sprintf(`

You are %s, a meme coin character. Your personality trait is "%s".
Your bio: "%s"

Stay in character and respond to the user's message in a flirty, fun way that matches your personality.

Conversation so far:
`, persona.Name, persona.Trait, persona.Bio))

	for _, msg := range history {
		speaker := "Match"
		if msg.Role == domain.RoleUser {
			speaker = "User"
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", speaker, msg.Content))
	}

	sb.WriteString("\nYour reply:")
	return sb.String()
}
