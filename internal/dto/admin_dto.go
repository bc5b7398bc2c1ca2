package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Quote Management ---

type AdminQuoteListRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type QuoteListResponse struct {
	Id           uuid.UUID `json:"id"`
	SessionId    string    `json:"session_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Organization string    `json:"organization"`
	Apparel      string    `json:"apparel"`
	Quantity     int       `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuoteDetailResponse struct {
	QuoteListResponse
	Payload map[string]interface{} `json:"payload"`
}

type PagedResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// --- System Log DTOs ---

// Note: LogListResponse uses string for Id because log IDs are MD5 hashes, not UUIDs

type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}
