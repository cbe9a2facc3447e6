package service

import (
	"context"
	"encoding/json"

	"notevision-be/internal/dto"
	"notevision-be/internal/pkg/logger"
	"notevision-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains share events off the pub/sub channel and sends the
// notification email for each one, keeping SMTP latency out of the request
// path.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.NotebookSharedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal share message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("ConsumerService", "Sending share notification", map[string]interface{}{
		"notebook_id": payload.NotebookId,
		"recipient":   payload.RecipientEmail,
	})

	err := cs.emailService.SendShareNotification(
		payload.RecipientEmail,
		payload.OwnerEmail,
		payload.NotebookName,
		payload.Permission,
	)
	if err != nil {
		// The grant itself already persisted; a lost email is not worth a retry storm.
		cs.logger.Error("ConsumerService", "Failed to send share notification", map[string]interface{}{
			"recipient": payload.RecipientEmail,
			"error":     err.Error(),
		})
	}

	msg.Ack()
}
