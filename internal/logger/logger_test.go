// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Contains(t, entry, "func")
}

func TestSetMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want zerolog.Level
	}{
		{name: "production logs info and above", mode: ModeProduction, want: zerolog.InfoLevel},
		{name: "development logs everything", mode: ModeDevelopment, want: zerolog.DebugLevel},
		{name: "unknown mode falls back to debug", mode: "staging", want: zerolog.DebugLevel},
	}

	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetMode(tt.mode)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetMode_ProductionDropsDebug(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)
	SetMode(ModeProduction)

	l.Debug().Msg("noise")
	assert.Empty(t, buf.String())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("worker")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "abc").Logger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "worker", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}
