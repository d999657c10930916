package domain

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry in a conversation log. Logs are append-only and
// unbounded; only the last few entries are forwarded to the model.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}
