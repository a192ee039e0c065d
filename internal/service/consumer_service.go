package service

import (
	"context"
	"encoding/json"

	"ichibetsu-be/internal/pkg/cache"
	"ichibetsu-be/internal/pkg/logger"
	"ichibetsu-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	countCache *cache.FavoriteCountCache
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	countCache *cache.FavoriteCountCache,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		countCache: countCache,
		log:        log,
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
	var evt events.FavoriteEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		// Ack malformed payloads, retrying cannot fix them.
		cs.log.Error("consumer", "failed to unmarshal favorite event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	if err := cs.countCache.Invalidate(ctx, evt.RestaurantId); err != nil {
		cs.log.Warn("consumer", "failed to invalidate favorite count cache", map[string]interface{}{
			"restaurant_id": evt.RestaurantId,
			"event_type":    evt.Type,
			"error":         err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "favorite event processed", map[string]interface{}{
		"event_type":    evt.Type,
		"favorite_id":   evt.FavoriteId,
		"restaurant_id": evt.RestaurantId,
	})
	msg.Ack()
}
