package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/signup-api/internal/api/shared"
	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestParamErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Missing param: name", NewMissingParamError("name").Error())
	assert.Equal(t, "Invalid param: email", NewInvalidParamError("email").Error())
	assert.Equal(t, "Internal server error", (&ServerError{}).Error())
}

func TestErrorTaxonomyMatching(t *testing.T) {
	t.Parallel()

	missing := fmt.Errorf("wrapped: %w", NewMissingParamError("email"))
	invalid := NewInvalidParamError("passwordConfirmation")
	server := &ServerError{}

	assert.True(t, errors.Is(missing, ErrMissingParam))
	assert.False(t, errors.Is(missing, ErrInvalidParam))
	assert.True(t, errors.Is(invalid, ErrInvalidParam))
	assert.False(t, errors.Is(invalid, ErrServer))
	assert.True(t, errors.Is(server, ErrServer))

	var target *MissingParamError
	assert.True(t, errors.As(missing, &target))
	assert.Equal(t, "email", target.Param)
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"missing param", NewMissingParamError("name"), "Missing param: name"},
		{"invalid param", NewInvalidParamError("email"), "Invalid param: email"},
		{"server error", &ServerError{}, "Internal server error"},
		{"internal detail", errors.New("pq: relation accounts does not exist"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"missing param", NewMissingParamError("name"), http.StatusBadRequest},
		{"invalid param", fmt.Errorf("wrap: %w", NewInvalidParamError("email")), http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"domain validation", fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyName), http.StatusBadRequest},
		{"body too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"duplicate email", fmt.Errorf("add account: %w", store.ErrEmailExists), http.StatusConflict},
		{"server error", &ServerError{}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}
