package contextkeys

import (
	"context"
	"testing"

	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fieldsRecorder struct {
	fields port.Fields
}

func (r *fieldsRecorder) Info(string, port.Fields)         {}
func (r *fieldsRecorder) Warn(string, port.Fields)         {}
func (r *fieldsRecorder) Error(string, error, port.Fields) {}
func (r *fieldsRecorder) Debug(string, port.Fields)        {}
func (r *fieldsRecorder) WithFields(fields port.Fields) port.LoggerPort {
	merged := port.Fields{}
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &fieldsRecorder{fields: merged}
}

func TestLoggerFromContextWithoutLogger(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.WithFields(port.Fields{"k": "v"}).Error("ignored", nil, nil)
	})
}

func TestUseCaseLogger(t *testing.T) {
	ctx := ContextWithLogger(context.Background(), &fieldsRecorder{fields: port.Fields{port.FieldTraceID: "t-1"}})

	withID := UseCaseLogger(ctx, "GetProperty", "p-1").(*fieldsRecorder)
	assert.Equal(t, port.Fields{
		port.FieldTraceID:    "t-1",
		port.FieldUseCase:    "GetProperty",
		port.FieldPropertyID: "p-1",
	}, withID.fields)

	withoutID := UseCaseLogger(ctx, "ListProperties", "").(*fieldsRecorder)
	assert.NotContains(t, withoutID.fields, port.FieldPropertyID)
	assert.Equal(t, "ListProperties", withoutID.fields[port.FieldUseCase])
}

func TestTraceIDFromHeader(t *testing.T) {
	const sent = "7f1b6a52-0e65-4d2e-9d0c-3f1f2c4b5a61"
	assert.Equal(t, sent, TraceIDFromHeader(sent))

	for _, raw := range []string{"", "not-a-uuid", "<script>"} {
		got := TraceIDFromHeader(raw)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, raw)
		assert.NotEqual(t, raw, got)
	}
}

func TestTraceIDRoundTrip(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
	ctx := ContextWithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))
}
