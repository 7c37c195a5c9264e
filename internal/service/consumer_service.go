package service

import (
	"context"
	"encoding/json"

	"matchfeed-be/internal/dto"
	"matchfeed-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process recompute queue: every message
// names one user whose presorted segments must be rebuilt.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	presort   IPresortService
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	presort IPresortService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		presort:   presort,
		log:       log,
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
	var payload dto.PresortRecomputeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal recompute message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages never succeed on retry
		return
	}

	cs.log.Info("consumer", "recomputing presorted segments", map[string]interface{}{
		"user_id": payload.UserId,
		"reason":  payload.Reason,
	})

	if err := cs.presort.RecomputeForUser(ctx, payload.UserId); err != nil {
		cs.log.Error("consumer", "presort recompute failed", map[string]interface{}{
			"user_id": payload.UserId,
			"error":   err.Error(),
		})
		msg.Nack() // retriable
		return
	}

	msg.Ack()
}
