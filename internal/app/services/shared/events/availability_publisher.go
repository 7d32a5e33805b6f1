package events

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the part of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type availabilityPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
	// amqp091 channels must not be shared by concurrent publishers
	mu sync.Mutex
}

func NewAvailabilityPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.AvailabilityEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}
	return newAvailabilityPublisher(channel, logger, queue)
}

func newAvailabilityPublisher(channel amqpChannel, logger *zap.Logger, queue string) (*availabilityPublisher, error) {
	_, err := channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queue)
	}

	return &availabilityPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *availabilityPublisher) Publish(ctx context.Context, event *models.AvailabilityEvent) error {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("availabilityPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, string(event.Type)),
		zap.String(constvars.LoggingDoctorIDKey, event.DoctorID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("availabilityPublisher.Publish error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Headers: amqp091.Table{
			"request_id": requestID,
		},
	}

	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("availabilityPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("availabilityPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingEventTypeKey, string(event.Type)),
	)
	return nil
}
