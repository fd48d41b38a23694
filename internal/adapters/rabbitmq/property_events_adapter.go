package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abhishek10293/PropertyManagement/internal/constants"
	"github.com/Abhishek10293/PropertyManagement/internal/contextkeys"
	"github.com/Abhishek10293/PropertyManagement/internal/core/domain"
	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// MessagePublisher - то, что адаптеру нужно от rabbitmq_producer.Publisher
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPropertyEventsAdapter публикует события жизненного цикла объявлений
type RabbitMQPropertyEventsAdapter struct {
	producer MessagePublisher
	now      func() time.Time
}

func NewRabbitMQPropertyEventsAdapter(producer MessagePublisher) (*RabbitMQPropertyEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &RabbitMQPropertyEventsAdapter{
		producer: producer,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (a *RabbitMQPropertyEventsAdapter) PropertyCreated(ctx context.Context, property domain.Property) error {
	return a.publish(ctx, constants.RoutingKeyPropertyCreated, PropertyEventDTO{
		PropertyID: property.ID,
		Property:   toSnapshotDTO(property),
	})
}

func (a *RabbitMQPropertyEventsAdapter) PropertyUpdated(ctx context.Context, property domain.Property) error {
	return a.publish(ctx, constants.RoutingKeyPropertyUpdated, PropertyEventDTO{
		PropertyID: property.ID,
		Property:   toSnapshotDTO(property),
	})
}

func (a *RabbitMQPropertyEventsAdapter) PropertyDeleted(ctx context.Context, propertyID string) error {
	return a.publish(ctx, constants.RoutingKeyPropertyDeleted, PropertyEventDTO{PropertyID: propertyID})
}

func (a *RabbitMQPropertyEventsAdapter) Close() error {
	return a.producer.Close()
}

func (a *RabbitMQPropertyEventsAdapter) publish(ctx context.Context, routingKey string, event PropertyEventDTO) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "RabbitMQPropertyEventsAdapter",
		"routing_key": routingKey,
		"property_id": event.PropertyID,
	})

	event.Event = routingKey
	event.OccurredAt = a.now()

	body, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal property event", err, nil)
		return fmt.Errorf("failed to marshal property event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Headers: amqp.Table{
			"event-type":    routingKey,
			"event-version": "1.0.0",
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish property event", err, nil)
		return err
	}

	adapterLogger.Debug("Property event published", nil)
	return nil
}
