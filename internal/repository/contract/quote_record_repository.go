package contract

import (
	"context"

	"screenprint-chatbot-be/internal/entity"

	"github.com/google/uuid"
)

type QuoteRecordRepository interface {
	Create(ctx context.Context, record *entity.QuoteRecord) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.QuoteRecord, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.QuoteRecord, error)
	Count(ctx context.Context) (int64, error)
}
