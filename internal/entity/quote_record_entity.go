package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuoteRecord is the archived copy of a confirmed quote request.
type QuoteRecord struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionId    string         `gorm:"index" json:"session_id"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Email        string         `gorm:"index" json:"email"`
	Phone        string         `json:"phone"`
	Organization string         `json:"organization"`
	Apparel      string         `json:"apparel"`
	Quantity     int            `json:"quantity"`
	Payload      datatypes.JSON `json:"payload"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (QuoteRecord) TableName() string {
	return "quote_records"
}
