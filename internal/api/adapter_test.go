package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/signup-api/internal/api/shared"
	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// controllerFunc adapts a function to the Controller interface.
type controllerFunc func(ctx context.Context, req HTTPRequest) HTTPResponse

func (f controllerFunc) Handle(ctx context.Context, req HTTPRequest) HTTPResponse {
	return f(ctx, req)
}

func postJSON(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestAdaptRoute_Signup(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	creator := mocks.NewMockAccountCreator()
	creator.Account = &domain.Account{
		ID:       accountID,
		Name:     "valid_name",
		Email:    "valid_email@email.com",
		Password: "$2a$10$hash",
	}
	controller := NewSignUpController(mocks.NewMockEmailValidator(), creator, nil)
	handler := AdaptRoute(controller, time.Second)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing name",
			body:       `{"email":"a@b.co","password":"x","passwordConfirmation":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing param: name",
		},
		{
			name:       "confirmation mismatch",
			body:       `{"name":"n","email":"a@b.co","password":"a","passwordConfirmation":"b"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid param: passwordConfirmation",
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request format",
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request format",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recorder := postJSON(t, handler, tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			var resp shared.ErrorResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		recorder := postJSON(t, handler,
			`{"name":"valid_name","email":"valid_email@email.com","password":"pw","passwordConfirmation":"pw"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, accountID.String(), body["id"])
		assert.Equal(t, "valid_name", body["name"])
		assert.Equal(t, "valid_email@email.com", body["email"])
		assert.NotContains(t, body, "password", "stored credential is never serialized")
	})
}

func TestAdaptRoute_ServerErrorHidesCause(t *testing.T) {
	t.Parallel()

	handler := AdaptRoute(controllerFunc(func(ctx context.Context, req HTTPRequest) HTTPResponse {
		return InternalError()
	}), 0)

	recorder := postJSON(t, handler, `{}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
}

func TestAdaptRoute_AppliesTimeout(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	var hasDeadline bool
	handler := AdaptRoute(controllerFunc(func(ctx context.Context, req HTTPRequest) HTTPResponse {
		deadline, hasDeadline = ctx.Deadline()
		assert.Equal(t, map[string]any{"name": "n"}, req.Body)
		return Success(map[string]string{})
	}), 2*time.Second)

	recorder := postJSON(t, handler, `{"name":"n"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
}

func TestAdaptRoute_BodyTooLarge(t *testing.T) {
	t.Parallel()

	handler := AdaptRoute(controllerFunc(func(ctx context.Context, req HTTPRequest) HTTPResponse {
		t.Error("controller must not run for an oversized body")
		return InternalError()
	}), 0)

	body := `{"name":"` + strings.Repeat("a", shared.MaxRequestBodyBytes+1) + `"}`
	recorder := postJSON(t, handler, body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
	assert.JSONEq(t, `{"error":"Invalid request format"}`, recorder.Body.String())
}
