package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/signup-api/internal/api/shared"
	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/store"
)

// Sentinels for matching the signup error taxonomy with errors.Is.
var (
	ErrMissingParam = errors.New("missing param")
	ErrInvalidParam = errors.New("invalid param")
	ErrServer       = errors.New("internal server error")
)

// MissingParamError reports a required request field that was absent or empty.
type MissingParamError struct {
	Param string
}

// NewMissingParamError creates a MissingParamError for the named field.
func NewMissingParamError(param string) *MissingParamError {
	return &MissingParamError{Param: param}
}

func (e *MissingParamError) Error() string {
	return "Missing param: " + e.Param
}

// Is reports whether target is ErrMissingParam.
func (e *MissingParamError) Is(target error) bool {
	return target == ErrMissingParam
}

// InvalidParamError reports a request field that was present but failed a
// semantic check.
type InvalidParamError struct {
	Param string
}

// NewInvalidParamError creates an InvalidParamError for the named field.
func NewInvalidParamError(param string) *InvalidParamError {
	return &InvalidParamError{Param: param}
}

func (e *InvalidParamError) Error() string {
	return "Invalid param: " + e.Param
}

// Is reports whether target is ErrInvalidParam.
func (e *InvalidParamError) Is(target error) bool {
	return target == ErrInvalidParam
}

// ServerError is the opaque failure returned to clients. It deliberately
// carries no cause.
type ServerError struct{}

func (e *ServerError) Error() string {
	return "Internal server error"
}

// Is reports whether target is ErrServer.
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// MapErrorToStatusCode maps an error to the HTTP status that best describes
// its cause. The signup flow always answers collaborator failures with 500;
// this mapping is used for request decoding and for failure diagnostics.
func MapErrorToStatusCode(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrMissingParam),
		errors.Is(err, ErrInvalidParam),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, store.ErrEmailExists):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err.
// Parameter errors render their own message; anything else collapses to a
// generic message so internal details never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, ErrMissingParam), errors.Is(err, ErrInvalidParam):
		return err.Error()
	case errors.Is(err, ErrServer):
		return (&ServerError{}).Error()
	default:
		return "An unexpected error occurred"
	}
}
