package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the audit topic and appends rows to the audit
// trail. The trail is best-effort: malformed messages are acked away and
// store failures are nacked for redelivery.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
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
	var payload dto.AuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := entity.AuditLog{
		Id:         uuid.New(),
		BusinessId: payload.BusinessId,
		SessionId:  payload.SessionId,
		Action:     payload.Action,
		Payload:    payload.Payload,
		CreatedAt:  time.Now(),
	}

	if err := uow.AuditLogRepository().Create(ctx, &entry); err != nil {
		log.Printf("[ERROR] Failed to append audit row (%s): %v", payload.Action, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
