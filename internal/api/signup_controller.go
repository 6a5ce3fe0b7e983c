package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"reflect"

	"github.com/phrazzld/signup-api/internal/domain"
	"github.com/phrazzld/signup-api/internal/platform/logger"
	"github.com/phrazzld/signup-api/internal/redact"
)

// Signup request fields, in the order their presence is checked.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "passwordConfirmation"
)

const componentName = "signup_controller"

var requiredSignupFields = []string{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldPasswordConfirmation,
}

// SignUpController validates signup requests and delegates account creation.
// It holds no mutable state; it is safe for concurrent use as long as its
// EmailValidator and AccountCreator are.
type SignUpController struct {
	emailValidator domain.EmailValidator
	addAccount     domain.AccountCreator
	logger         *slog.Logger
}

var _ Controller = (*SignUpController)(nil)

// NewSignUpController creates a SignUpController with the given dependencies.
// If logger is nil, slog.Default() is used.
func NewSignUpController(
	emailValidator domain.EmailValidator,
	addAccount domain.AccountCreator,
	logger *slog.Logger,
) *SignUpController {
	if logger == nil {
		logger = slog.Default()
	}
	return &SignUpController{
		emailValidator: emailValidator,
		addAccount:     addAccount,
		logger:         logger.With("component", componentName),
	}
}

// Handle runs the signup checks in order and stops at the first failure:
// required fields, password confirmation, email format, then account creation.
func (c *SignUpController) Handle(ctx context.Context, req HTTPRequest) HTTPResponse {
	for _, field := range requiredSignupFields {
		if !isPresent(req.Body[field]) {
			return BadRequest(NewMissingParamError(field))
		}
	}

	if !strictEqual(req.Body[FieldPassword], req.Body[FieldPasswordConfirmation]) {
		return BadRequest(NewInvalidParamError(FieldPasswordConfirmation))
	}

	resp, err := c.contain(func() (HTTPResponse, error) {
		return c.createAccount(ctx, req.Body)
	})
	if err != nil {
		logger.ForComponent(ctx, c.logger, componentName).Error("signup failed",
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)),
			slog.Int("cause_status", MapErrorToStatusCode(err)))
		return InternalError()
	}
	return resp
}

// createAccount covers the steps that call out to collaborators. Any error it
// returns is an internal failure.
func (c *SignUpController) createAccount(ctx context.Context, body map[string]any) (HTTPResponse, error) {
	input, err := accountInput(body)
	if err != nil {
		return HTTPResponse{}, err
	}

	if err := ctx.Err(); err != nil {
		return HTTPResponse{}, fmt.Errorf("validate email: %w", err)
	}
	valid, err := c.emailValidator.IsValid(ctx, input.Email)
	if err != nil {
		return HTTPResponse{}, fmt.Errorf("validate email: %w", err)
	}
	if !valid {
		return BadRequest(NewInvalidParamError(FieldEmail)), nil
	}

	if err := ctx.Err(); err != nil {
		return HTTPResponse{}, fmt.Errorf("add account: %w", err)
	}
	account, err := c.addAccount.Add(ctx, input)
	if err != nil {
		return HTTPResponse{}, fmt.Errorf("add account: %w", err)
	}

	return Success(account), nil
}

// contain runs fn and converts a panic into an error, so a misbehaving
// collaborator still yields a response.
func (c *SignUpController) contain(fn func() (HTTPResponse, error)) (resp HTTPResponse, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp = HTTPResponse{}
			err = fmt.Errorf("recovered panic: %v", p)
		}
	}()
	return fn()
}

// accountInput narrows the request body to the fields forwarded to account
// creation. The fields are known to be present; a non-string value is an
// unexpected shape.
func accountInput(body map[string]any) (domain.AddAccountInput, error) {
	var input domain.AddAccountInput
	targets := []struct {
		field string
		dst   *string
	}{
		{FieldName, &input.Name},
		{FieldEmail, &input.Email},
		{FieldPassword, &input.Password},
	}
	for _, t := range targets {
		s, ok := body[t.field].(string)
		if !ok {
			return domain.AddAccountInput{}, fmt.Errorf("field %q has unexpected type %T", t.field, body[t.field])
		}
		*t.dst = s
	}
	return input, nil
}

// isPresent reports whether v counts as provided: nil, "", false, numeric
// zero and NaN are all treated as missing.
func isPresent(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val != ""
		}
		return f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0 && !math.IsNaN(rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return !rv.IsZero()
	default:
		return true
	}
}

// strictEqual compares two decoded values by identity of type and value.
// Uncomparable values such as slices and maps are never equal, including
// when they are nested inside an otherwise comparable array or struct.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
