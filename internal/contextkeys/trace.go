package contextkeys

import (
	"context"

	"github.com/google/uuid"
)

// TraceIDHeader - заголовок, в котором CLI отправляет trace_id, а API его возвращает
const TraceIDHeader = "X-Trace-ID"

type traceIDKeyType struct{}

var traceIDKey = traceIDKeyType{}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext возвращает "", если trace_id не задан
func TraceIDFromContext(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

func NewTraceID() string {
	return uuid.NewString()
}

// TraceIDFromHeader принимает присланный trace_id только в виде uuid.
// Пустое или произвольное значение заменяется новым.
func TraceIDFromHeader(value string) string {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return NewTraceID()
	}
	return parsed.String()
}
