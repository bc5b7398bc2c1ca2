package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"screenprint-chatbot-be/internal/dto"
	"screenprint-chatbot-be/internal/entity"
	"screenprint-chatbot-be/internal/pkg/logger"
	"screenprint-chatbot-be/internal/repository/contract"

	"github.com/google/uuid"
)

// IAdminService exposes archived quotes and system logs for the back office.
type IAdminService interface {
	GetQuotes(ctx context.Context, page, limit int) (*dto.PagedResponse[*dto.QuoteListResponse], error)
	GetQuoteDetail(ctx context.Context, id uuid.UUID) (*dto.QuoteDetailResponse, error)
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	quoteRepo contract.QuoteRecordRepository
	logger    logger.ILogger
}

func NewAdminService(quoteRepo contract.QuoteRecordRepository, logger logger.ILogger) IAdminService {
	return &adminService{
		quoteRepo: quoteRepo,
		logger:    logger,
	}
}

func (s *adminService) GetQuotes(ctx context.Context, page, limit int) (*dto.PagedResponse[*dto.QuoteListResponse], error) {
	if s.quoteRepo == nil {
		return nil, fmt.Errorf("quote archiving is not configured")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	records, err := s.quoteRepo.FindAll(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.quoteRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.QuoteListResponse, 0, len(records))
	for _, r := range records {
		items = append(items, quoteListItem(r))
	}

	return &dto.PagedResponse[*dto.QuoteListResponse]{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *adminService) GetQuoteDetail(ctx context.Context, id uuid.UUID) (*dto.QuoteDetailResponse, error) {
	if s.quoteRepo == nil {
		return nil, fmt.Errorf("quote archiving is not configured")
	}

	record, err := s.quoteRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("quote %s not found", id)
	}

	var payload map[string]interface{}
	if len(record.Payload) > 0 {
		if err := json.Unmarshal(record.Payload, &payload); err != nil {
			s.logger.Warn("ADMIN", "Quote payload is not valid JSON", map[string]interface{}{
				"quote_id": id.String(),
				"error":    err.Error(),
			})
		}
	}

	return &dto.QuoteDetailResponse{
		QuoteListResponse: *quoteListItem(record),
		Payload:           payload,
	}, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	entries, err := s.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, logListItem(e))
	}
	return result, nil
}

func (s *adminService) GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	entry, err := s.logger.GetLogById(logId)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("log %s not found", logId)
	}

	return &dto.LogDetailResponse{
		LogListResponse: *logListItem(*entry),
		Details:         entry.Details,
	}, nil
}

func quoteListItem(r *entity.QuoteRecord) *dto.QuoteListResponse {
	return &dto.QuoteListResponse{
		Id:           r.Id,
		SessionId:    r.SessionId,
		Name:         strings.TrimSpace(r.FirstName + " " + r.LastName),
		Email:        r.Email,
		Organization: r.Organization,
		Apparel:      r.Apparel,
		Quantity:     r.Quantity,
		CreatedAt:    r.CreatedAt,
	}
}

func logListItem(e logger.LogEntry) *dto.LogListResponse {
	createdAt, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		createdAt = time.Time{}
	}
	return &dto.LogListResponse{
		Id:        e.Id,
		Level:     e.Level,
		Module:    e.Module,
		Message:   e.Message,
		CreatedAt: createdAt,
	}
}
