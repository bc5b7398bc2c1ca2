package implementation

import (
	"context"
	"errors"

	"screenprint-chatbot-be/internal/entity"
	"screenprint-chatbot-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteRecordRepositoryImpl struct {
	db *gorm.DB
}

func NewQuoteRecordRepository(db *gorm.DB) contract.QuoteRecordRepository {
	return &QuoteRecordRepositoryImpl{db: db}
}

func (r *QuoteRecordRepositoryImpl) Create(ctx context.Context, record *entity.QuoteRecord) error {
	if record.Id == uuid.Nil {
		record.Id = uuid.New()
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *QuoteRecordRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.QuoteRecord, error) {
	var record entity.QuoteRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *QuoteRecordRepositoryImpl) FindAll(ctx context.Context, limit, offset int) ([]*entity.QuoteRecord, error) {
	var records []*entity.QuoteRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *QuoteRecordRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.QuoteRecord{}).Count(&count).Error
	return count, err
}
