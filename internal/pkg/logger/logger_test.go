package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer

	l, err := NewWithWriter(Config{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	l.Info("dropped")
	l.Warn("purchase order number taken", zap.Int("attempt", 2))
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "purchase order number taken", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.EqualValues(t, 2, entry["attempt"])
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"console debug", Config{Level: "DEBUG", Format: "console"}, false},
		{"empty level means info", Config{Format: "json"}, false},
		{"unknown level", Config{Level: "verbose", Format: "json"}, true},
		{"unknown format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	assert.NotNil(t, FromContext(context.Background()))
	assert.Empty(t, RequestID(context.Background()))

	ctx, enriched := WithRequestID(context.Background(), base, "req-42")
	assert.Equal(t, "req-42", RequestID(ctx))
	assert.Same(t, enriched, FromContext(ctx))

	FromContext(ctx).Info("hello")

	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "req-42", logs[0].ContextMap()["request_id"])
}
