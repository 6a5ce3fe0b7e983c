package api

import (
	"context"
	"net/http"
)

// HTTPRequest is the transport-neutral request a Controller handles.
// Body holds the decoded payload; no field is assumed to exist or to have a
// particular type.
type HTTPRequest struct {
	Body map[string]any
}

// HTTPResponse is the transport-neutral result of a Controller.
// Body is either an error from this package's taxonomy or a success payload.
type HTTPResponse struct {
	StatusCode int
	Body       any
}

// Controller handles one request and always produces exactly one response.
type Controller interface {
	Handle(ctx context.Context, req HTTPRequest) HTTPResponse
}

// BadRequest wraps a client error in a 400 response.
func BadRequest(err error) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusBadRequest, Body: err}
}

// InternalError returns the generic 500 response.
func InternalError() HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusInternalServerError, Body: &ServerError{}}
}

// Success wraps payload in a 200 response.
func Success(payload any) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusOK, Body: payload}
}
