package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"screenprint-chatbot-be/internal/dto"
	"screenprint-chatbot-be/internal/pkg/logger"
	"screenprint-chatbot-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	QuoteConfirmed(ctx context.Context, sessionID string, order store.Order) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string, logger logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    logger,
	}
}

func (ps *publisherService) QuoteConfirmed(ctx context.Context, sessionID string, order store.Order) error {
	payload := dto.QuoteConfirmedMessage{
		SessionId:   sessionID,
		Order:       order,
		ConfirmedAt: time.Now(),
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal quote event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payloadJSON)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		ps.logger.Error("PUBLISHER", "Failed to publish quote event", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return fmt.Errorf("failed to publish quote event: %w", err)
	}

	ps.logger.Info("PUBLISHER", "Quote event published", map[string]interface{}{
		"session_id": sessionID,
		"topic":      ps.topicName,
	})
	return nil
}
