package models

// MessageRole enum
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Urgency is the three-level triage classification attached to assistant
// replies and surfaced to the client.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// MessageMetadata carries the triage output for an assistant message.
type MessageMetadata struct {
	Symptoms         []string `json:"symptoms,omitempty"`
	Urgency          Urgency  `json:"urgency,omitempty"`
	SuggestedActions []string `json:"suggestedActions,omitempty"`
}

// Message is a single turn in a conversation. Messages are immutable once
// appended.
type Message struct {
	MessageID string           `json:"messageId"`
	Role      MessageRole      `json:"role"`
	Content   string           `json:"content"`
	Timestamp string           `json:"timestamp"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
}

// Conversation is the persisted chat history between a user and the
// assistant. Messages are ordered by append time.
type Conversation struct {
	ConversationID string    `json:"conversationId"`
	UserID         string    `json:"userId"`
	Messages       []Message `json:"messages"`
	Summary        string    `json:"summary,omitempty"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}
