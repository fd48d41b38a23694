package fluentlogger

import (
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config хранит конфигурацию для подключения к Fluent Bit.
type Config struct {
	Host      string // "127.0.0.1" или "fluent-bit" в Docker
	Port      int    // обычно 24224
	TagPrefix string // общий префикс тегов, например "listing-service"
	Async     bool
	Timeout   time.Duration
}

// NewClient создает клиент Fluent Bit.
// Пинга нет: ошибки соединения проявятся при первой отправке.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluentd tag prefix is required")
	}

	fcfg := fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Async:      cfg.Async,
	}
	if cfg.Timeout > 0 {
		fcfg.Timeout = cfg.Timeout
	}

	logger, err := fluent.New(fcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}
	return logger, nil
}
