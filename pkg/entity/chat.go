package entity

import "github.com/google/uuid"

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatRequest is what the chat collaborator receives for one turn.
type ChatRequest struct {
	UserID       uuid.UUID
	Message      string
	History      []ChatMessage
	SystemPrompt string
}

type ChatReply struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history"`
}
