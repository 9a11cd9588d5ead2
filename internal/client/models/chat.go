package models

import "time"

// ChatRole distinguishes transcript entries.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of the local chat transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the body of POST /api/chat/message.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId"`
}

// ChatResponse is the assistant's reply. ConversationID is set when the
// backend assigns or migrates the conversation.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversationId,omitempty"`
}
