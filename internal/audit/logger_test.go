package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)

	Log(context.Background(), Event{
		Type:       EventSessionDelete,
		ResourceID: 7,
		Details:    map[string]interface{}{"open": true},
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "data", entry["audit"])
	assert.Equal(t, "session_delete", entry["event_type"])
	assert.Equal(t, float64(7), entry["resource_id"])
	assert.Equal(t, true, entry["open"])
	assert.Equal(t, "audit event", entry["message"])
}

func TestLogFromRequest(t *testing.T) {
	buf := captureLog(t)

	req := httptest.NewRequest(http.MethodDelete, "/workouts/3", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	req.Header.Set("User-Agent", "curl/8.0")

	LogFromRequest(req, Event{Type: EventWorkoutDelete, ResourceID: 3})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "198.51.100.7", entry["ip"])
	assert.Equal(t, "curl/8.0", entry["user_agent"])
	assert.NotContains(t, entry, "request_id")
}
