package rabbitmq_consumer

import (
	"context"
	"fmt"
	"sync"

	"github.com/Abhishek10293/PropertyManagement/pkg/rabbitmq/rabbitmq_common"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler обрабатывает одно сообщение. Ошибка приводит к Nack без requeue.
type Handler func(ctx context.Context, d amqp.Delivery) error

// SubscriberConfig конфигурация подписчика
type SubscriberConfig struct {
	// Пустое имя - сервер сгенерирует временную exclusive очередь
	QueueName     string
	ExchangeName  string
	ExchangeType  string
	RoutingKeys   []string
	PrefetchCount int

	Logger rabbitmq_common.Logger
}

// Subscriber объявляет очередь, привязывает ее к обменнику
// и передает сообщения в Handler.
type Subscriber struct {
	config    SubscriberConfig
	channel   *amqp.Channel
	queueName string
	wg        sync.WaitGroup

	Logger rabbitmq_common.Logger
}

func NewSubscriber(cfg SubscriberConfig, connManager *rabbitmq_common.ConnectionManager) (*Subscriber, error) {
	if connManager == nil {
		return nil, fmt.Errorf("subscriber: connection manager is required")
	}
	if cfg.ExchangeName == "" || cfg.ExchangeType == "" {
		return nil, fmt.Errorf("subscriber: exchange name and type are required")
	}
	if len(cfg.RoutingKeys) == 0 {
		cfg.RoutingKeys = []string{"#"}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	_, ch, err := connManager.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("subscriber: failed to get channel from manager: %w", err)
	}

	s := &Subscriber{config: cfg, channel: ch, Logger: logger}
	if err := s.setup(); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return s, nil
}

func (s *Subscriber) setup() error {
	if s.config.PrefetchCount > 0 {
		if err := s.channel.Qos(s.config.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	err := s.channel.ExchangeDeclare(s.config.ExchangeName, s.config.ExchangeType, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare exchange '%s': %w", s.config.ExchangeName, err)
	}

	temporary := s.config.QueueName == ""
	q, err := s.channel.QueueDeclare(
		s.config.QueueName,
		!temporary, // durable
		temporary,  // auto-delete
		temporary,  // exclusive
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", s.config.QueueName, err)
	}
	s.queueName = q.Name

	for _, key := range s.config.RoutingKeys {
		s.Logger.Debug("Binding queue to exchange", "queue", s.queueName, "exchange", s.config.ExchangeName, "routing_key", key)
		if err := s.channel.QueueBind(s.queueName, key, s.config.ExchangeName, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue '%s': %w", s.queueName, err)
		}
	}
	return nil
}

// Run читает сообщения, пока не отменен ctx или не закрыт канал
func (s *Subscriber) Run(ctx context.Context, handler Handler) error {
	deliveries, err := s.channel.Consume(s.queueName, "", false, s.config.QueueName == "", false, false, nil)
	if err != nil {
		return fmt.Errorf("subscriber: failed to start consuming: %w", err)
	}
	s.Logger.Info("Subscriber started", "queue", s.queueName)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("subscriber: delivery channel closed")
			}
			s.wg.Add(1)
			s.handle(ctx, handler, d)
			s.wg.Done()
		}
	}
}

func (s *Subscriber) handle(ctx context.Context, handler Handler, d amqp.Delivery) {
	if err := handler(ctx, d); err != nil {
		s.Logger.Error(err, "Handler failed, message rejected", "routing_key", d.RoutingKey)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// Close дожидается текущего обработчика и закрывает канал
func (s *Subscriber) Close() error {
	s.wg.Wait()
	if s.channel == nil || s.channel.IsClosed() {
		return nil
	}
	err := s.channel.Close()
	s.Logger.Info("Subscriber closed")
	return err
}
