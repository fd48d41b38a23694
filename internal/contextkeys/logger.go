package contextkeys

import (
	"context"

	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
)

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// ContextWithLogger кладет в контекст логгер запроса (на сервере)
// или запуска команды (в CLI)
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext никогда не возвращает nil: без логгера в контексте
// записи отбрасываются
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok {
		return logger
	}
	return discardLogger{}
}

// UseCaseLogger помечает записи именем use case'а. propertyID добавляется,
// если операция относится к конкретному объявлению.
func UseCaseLogger(ctx context.Context, useCase, propertyID string) port.LoggerPort {
	fields := port.Fields{port.FieldUseCase: useCase}
	if propertyID != "" {
		fields[port.FieldPropertyID] = propertyID
	}
	return LoggerFromContext(ctx).WithFields(fields)
}

type discardLogger struct{}

func (discardLogger) Info(string, port.Fields)                 {}
func (discardLogger) Warn(string, port.Fields)                 {}
func (discardLogger) Error(string, error, port.Fields)         {}
func (discardLogger) Debug(string, port.Fields)                {}
func (d discardLogger) WithFields(port.Fields) port.LoggerPort { return d }
