package logger_adapter

import (
	"fmt"

	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

// MultiLoggerAdapter дублирует записи сервиса объявлений во все приемники:
// консоль и, если включен, Fluent Bit
type MultiLoggerAdapter struct {
	sinks []port.LoggerPort
}

// NewMultiloggerAdapter пропускает nil-приемники и раскрывает вложенные
// MultiLoggerAdapter. Если приемник остался один, он возвращается как есть.
func NewMultiloggerAdapter(sinks ...port.LoggerPort) (port.LoggerPort, error) {
	flat := make([]port.LoggerPort, 0, len(sinks))
	for _, sink := range sinks {
		switch s := sink.(type) {
		case nil:
			continue
		case *MultiLoggerAdapter:
			flat = append(flat, s.sinks...)
		default:
			flat = append(flat, s)
		}
	}

	switch len(flat) {
	case 0:
		return nil, fmt.Errorf("multilogger: at least one logger is required")
	case 1:
		return flat[0], nil
	}
	return &MultiLoggerAdapter{sinks: flat}, nil
}

func (m *MultiLoggerAdapter) each(write func(port.LoggerPort)) {
	for _, sink := range m.sinks {
		write(sink)
	}
}

func (m *MultiLoggerAdapter) Info(msg string, fields port.Fields) {
	m.each(func(l port.LoggerPort) { l.Info(msg, fields) })
}

func (m *MultiLoggerAdapter) Warn(msg string, fields port.Fields) {
	m.each(func(l port.LoggerPort) { l.Warn(msg, fields) })
}

func (m *MultiLoggerAdapter) Error(msg string, err error, fields port.Fields) {
	m.each(func(l port.LoggerPort) { l.Error(msg, err, fields) })
}

func (m *MultiLoggerAdapter) Debug(msg string, fields port.Fields) {
	m.each(func(l port.LoggerPort) { l.Debug(msg, fields) })
}

func (m *MultiLoggerAdapter) WithFields(fields port.Fields) port.LoggerPort {
	enriched := make([]port.LoggerPort, len(m.sinks))
	for i, sink := range m.sinks {
		enriched[i] = sink.WithFields(fields)
	}
	return &MultiLoggerAdapter{sinks: enriched}
}
