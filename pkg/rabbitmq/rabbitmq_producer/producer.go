package rabbitmq_producer

import (
	"context"
	"fmt"
	"sync"

	"github.com/Abhishek10293/PropertyManagement/pkg/rabbitmq/rabbitmq_common"
	amqp "github.com/rabbitmq/amqp091-go"
)

// PublisherConfig конфигурация издателя
type PublisherConfig struct {
	ExchangeName    string // пустая строка - default exchange
	ExchangeType    string // direct, fanout, topic, headers
	DurableExchange bool

	// Если false, издатель считает, что обменник уже объявлен
	DeclareExchangeIfMissing bool

	Logger rabbitmq_common.Logger
}

// Publisher публикует сообщения в один обменник через канал,
// полученный у ConnectionManager.
type Publisher struct {
	config      PublisherConfig
	connManager *rabbitmq_common.ConnectionManager
	mu          sync.Mutex
	channel     *amqp.Channel

	Logger rabbitmq_common.Logger
}

func NewPublisher(cfg PublisherConfig, connManager *rabbitmq_common.ConnectionManager) (*Publisher, error) {
	if connManager == nil {
		return nil, fmt.Errorf("producer: connection manager is required")
	}
	if cfg.DeclareExchangeIfMissing && (cfg.ExchangeName == "" || cfg.ExchangeType == "") {
		return nil, fmt.Errorf("producer: exchange name and type are required when DeclareExchangeIfMissing is true")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	p := &Publisher{
		config:      cfg,
		connManager: connManager,
		Logger:      logger,
	}

	if err := p.openChannel(); err != nil {
		return nil, err
	}
	p.Logger.Debug("Publisher ready", "exchange", cfg.ExchangeName)
	return p, nil
}

// openChannel вызывается под p.mu или из конструктора
func (p *Publisher) openChannel() error {
	_, ch, err := p.connManager.GetChannel()
	if err != nil {
		return fmt.Errorf("producer: failed to get channel from manager: %w", err)
	}

	if p.config.DeclareExchangeIfMissing {
		p.Logger.Debug("Declaring exchange", "name", p.config.ExchangeName, "type", p.config.ExchangeType)
		err = ch.ExchangeDeclare(
			p.config.ExchangeName,
			p.config.ExchangeType,
			p.config.DurableExchange,
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,
		)
		if err != nil {
			_ = ch.Close()
			return fmt.Errorf("producer: failed to declare exchange '%s': %w", p.config.ExchangeName, err)
		}
	}

	p.channel = ch
	return nil
}

// Publish отправляет сообщение. Закрытый канал (например, после
// переподключения соединения) открывается заново один раз.
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		p.Logger.Warn("Publisher channel is closed, reopening", "exchange", p.config.ExchangeName)
		if err := p.openChannel(); err != nil {
			return err
		}
	}

	err := p.channel.PublishWithContext(
		ctx,
		p.config.ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("producer: failed to publish message: %w", err)
	}
	return nil
}

// Close закрывает канал. Соединением владеет ConnectionManager.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.channel != nil && !p.channel.IsClosed() {
		if err = p.channel.Close(); err != nil {
			p.Logger.Error(err, "Error closing channel")
		}
	}
	p.channel = nil
	p.Logger.Info("Producer closed")
	return err
}
