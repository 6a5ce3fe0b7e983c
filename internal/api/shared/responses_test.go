package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/signup-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusOK,
			data:         map[string]interface{}{"id": "abc"},
			expectedBody: `{"id":"abc"}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rr := httptest.NewRecorder()

			RespondWithJSON(rr, req, tc.status, tc.data)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/signup", nil)
	req = req.WithContext(context.WithValue(req.Context(), TraceIDKey, "trace-123"))
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusBadRequest, "Missing param: name")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Missing param: name", resp.Error)
	assert.Equal(t, "trace-123", resp.TraceID)
	assert.Zero(t, resp.Code, "code is not serialized")
}

func TestRespondWithErrorAndLog_RedactsAndHidesCause(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	req := httptest.NewRequest(http.MethodPost, "/api/signup", nil)
	req = req.WithContext(logger.WithContext(req.Context(), log))
	rr := httptest.NewRecorder()

	cause := errors.New("insert failed for ada@example.com")
	RespondWithErrorAndLog(rr, req, http.StatusInternalServerError, "Internal server error", cause)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "insert failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "insert failed for [REDACTED_EMAIL]", entry["error"])
	assert.Equal(t, "*errors.errorString", entry["error_type"])
}

func TestRespondWithErrorAndLog_ClientErrorAtDebug(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	req := httptest.NewRequest(http.MethodPost, "/api/signup", nil)
	req = req.WithContext(logger.WithContext(req.Context(), log))

	RespondWithErrorAndLog(httptest.NewRecorder(), req, http.StatusBadRequest, "Invalid request format", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.NotContains(t, entry, "error")
}
