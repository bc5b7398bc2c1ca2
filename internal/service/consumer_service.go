package service

import (
	"context"
	"encoding/json"
	"time"

	"screenprint-chatbot-be/internal/dto"
	"screenprint-chatbot-be/internal/entity"
	"screenprint-chatbot-be/internal/pkg/logger"
	"screenprint-chatbot-be/internal/repository/contract"
	"screenprint-chatbot-be/pkg/flow/parse"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	quoteRepo contract.QuoteRecordRepository
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	quoteRepo contract.QuoteRecordRepository,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		quoteRepo: quoteRepo,
		logger:    logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.QuoteConfirmedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal quote event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("CONSUMER", "Archiving confirmed quote", map[string]interface{}{
		"session_id": payload.SessionId,
	})

	if cs.quoteRepo == nil {
		// Archiving is disabled when no database is configured.
		msg.Ack()
		return
	}

	orderJSON, err := json.Marshal(payload.Order)
	if err != nil {
		cs.logger.Error("CONSUMER", "Failed to marshal order payload", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		msg.Ack()
		return
	}

	quantity, ok := parse.Quantity(payload.Order.Quantity)
	if !ok {
		quantity = parse.SizesTotal(payload.Order.Sizes)
	}

	record := &entity.QuoteRecord{
		Id:           uuid.New(),
		SessionId:    payload.SessionId,
		FirstName:    payload.Order.FirstName,
		LastName:     payload.Order.LastName,
		Email:        payload.Order.Email,
		Phone:        payload.Order.Phone,
		Organization: payload.Order.Organization,
		Apparel:      payload.Order.Apparel,
		Quantity:     quantity,
		Payload:      datatypes.JSON(orderJSON),
		CreatedAt:    time.Now(),
	}

	if err := cs.quoteRepo.Create(ctx, record); err != nil {
		cs.logger.Error("CONSUMER", "Failed to archive quote", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	cs.logger.Info("CONSUMER", "Quote archived", map[string]interface{}{
		"session_id": payload.SessionId,
		"record_id":  record.Id.String(),
	})
	msg.Ack()
}
