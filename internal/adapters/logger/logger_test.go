package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/Abhishek10293/PropertyManagement/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPoster struct {
	tags     []string
	messages []port.Fields
}

func (r *recordingPoster) Post(tag string, message interface{}) error {
	r.tags = append(r.tags, tag)
	r.messages = append(r.messages, message.(port.Fields))
	return nil
}

func TestSlogAdapter_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, IsJSON: true, Level: slog.LevelDebug})

	logger.WithFields(port.Fields{"component": "test"}).Info("hello", port.Fields{"count": 2})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "test", record["component"])
	assert.Equal(t, float64(2), record["count"])
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, IsJSON: true, Level: slog.LevelWarn})

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	logger.Warn("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestFluentLoggerAdapter_MergesFieldsAndFiltersLevel(t *testing.T) {
	poster := &recordingPoster{}
	logger := newFluentLoggerAdapter(poster, slog.LevelInfo).WithFields(port.Fields{"service_name": "listing-service"})

	logger.Debug("skipped", nil)
	logger.Error("boom", errors.New("db down"), port.Fields{"op": "list"})

	require.Len(t, poster.messages, 1)
	assert.Equal(t, "error", poster.tags[0])
	msg := poster.messages[0]
	assert.Equal(t, "listing-service", msg["service_name"])
	assert.Equal(t, "list", msg["op"])
	assert.Equal(t, "db down", msg["error"])
	assert.Equal(t, "boom", msg["message"])
}

func TestMultiLogger(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	assert.Error(t, err)

	first, second := &recordingPoster{}, &recordingPoster{}
	multi, err := NewMultiloggerAdapter(newFluentLoggerAdapter(first, nil), newFluentLoggerAdapter(second, nil))
	require.NoError(t, err)

	multi.WithFields(port.Fields{"trace_id": "t-1"}).Warn("fan out", nil)

	require.Len(t, first.messages, 1)
	require.Len(t, second.messages, 1)
	assert.Equal(t, "t-1", first.messages[0]["trace_id"])
	assert.Equal(t, "t-1", second.messages[0]["trace_id"])
}

func TestMultiLoggerFlattensAndSkipsNil(t *testing.T) {
	_, err := NewMultiloggerAdapter(nil, nil)
	assert.Error(t, err)

	only := newFluentLoggerAdapter(&recordingPoster{}, nil)
	single, err := NewMultiloggerAdapter(nil, only)
	require.NoError(t, err)
	assert.Same(t, only, single)

	first, second, third := &recordingPoster{}, &recordingPoster{}, &recordingPoster{}
	inner, err := NewMultiloggerAdapter(newFluentLoggerAdapter(first, nil), newFluentLoggerAdapter(second, nil))
	require.NoError(t, err)
	outer, err := NewMultiloggerAdapter(inner, nil, newFluentLoggerAdapter(third, nil))
	require.NoError(t, err)

	multi, ok := outer.(*MultiLoggerAdapter)
	require.True(t, ok)
	assert.Len(t, multi.sinks, 3)

	outer.WithFields(port.Fields{port.FieldPropertyID: "p-9"}).Info("property created", nil)
	for _, poster := range []*recordingPoster{first, second, third} {
		require.Len(t, poster.messages, 1)
		assert.Equal(t, "p-9", poster.messages[0][port.FieldPropertyID])
	}
}
