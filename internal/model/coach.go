package model

// Role identifies the author of a coach message.
type Role string

// Coach message roles.
const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// CoachMessage is one transcript entry.
type CoachMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of a chat call.
type ChatRequest struct {
	Context *ClassificationResult `json:"context"`
	Message string                `json:"message"`
	History []CoachMessage        `json:"history"`
}

// ChatResponse is the body returned by the chat endpoint.
type ChatResponse struct {
	Response string `json:"response"`
}
