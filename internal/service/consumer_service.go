package service

import (
	"context"
	"encoding/json"
	"log"

	"portfolio-chat-be/internal/dto"
	"portfolio-chat-be/internal/websocket"
	"portfolio-chat-be/pkg/events"
	pktNats "portfolio-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the reply-stored topic: pushes each reply to the
// websocket hub and emits the external NATS event. Runs for the process
// lifetime; delivery here is best-effort, the stored reply in the store is
// the source of truth.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	natsPub   *pktNats.Publisher // nil when NATS is unavailable
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	natsPub *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		natsPub:   natsPub,
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
	var payload dto.ReplyStoredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal reply-stored message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.hub.NotifyReply(payload.SessionId, payload.Reply)

	if cs.natsPub != nil {
		if err := cs.natsPub.Publish(ctx, events.NewReplyStored(payload.SessionId)); err != nil {
			log.Printf("[WARN] Failed to publish reply-stored event: %v", err)
		}
	}

	msg.Ack()
}
