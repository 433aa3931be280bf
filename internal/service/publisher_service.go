package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-ordering-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
	// PublishAudit marshals and publishes one audit message. Failures are
	// logged and swallowed; audit is never allowed to abort the operation
	// that produced it.
	PublishAudit(ctx context.Context, msg dto.AuditMessage)
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (ps *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return ps.pubSub.Publish(ps.topicName, msg)
}

func (ps *publisherService) PublishAudit(ctx context.Context, msg dto.AuditMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WARN] Failed to marshal audit message %s: %v", msg.Action, err)
		return
	}
	if err := ps.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish audit message %s: %v", msg.Action, err)
	}
}

// auditSessionId adapts a session id for the optional audit field.
func auditSessionId(id uuid.UUID) *uuid.UUID {
	return &id
}
