package dto

import (
	"time"

	"screenprint-chatbot-be/pkg/store"
)

type ChatRequest struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type ChatResponse struct {
	Success           bool                   `json:"success"`
	Response          string                 `json:"response"`
	SessionId         string                 `json:"session_id"`
	CurrentState      string                 `json:"current_state"`
	ClassifiedIntent  string                 `json:"classified_intent,omitempty"`
	ConversationEnded bool                   `json:"conversation_ended"`
	Error             string                 `json:"error,omitempty"`
	ContextData       map[string]interface{} `json:"context_data,omitempty"`
}

type NewSessionResponse struct {
	SessionId string    `json:"session_id"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionStateResponse struct {
	SessionId         string                 `json:"session_id"`
	CurrentState      string                 `json:"current_state"`
	ConversationEnded bool                   `json:"conversation_ended"`
	MessageCount      int                    `json:"message_count"`
	Order             store.Order            `json:"order"`
	RecentHistory     []store.Message        `json:"recent_history"`
	ContextData       map[string]interface{} `json:"context_data,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type QuoteConfirmedMessage struct {
	SessionId   string      `json:"session_id"`
	Order       store.Order `json:"order"`
	ConfirmedAt time.Time   `json:"confirmed_at"`
}

type UploadResponse struct {
	SessionId string `json:"session_id"`
	FileId    string `json:"file_id"`
	Filename  string `json:"filename"`
	ViewLink  string `json:"view_link"`
}
