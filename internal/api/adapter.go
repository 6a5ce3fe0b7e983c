package api

import (
	"context"
	"net/http"
	"time"

	"github.com/phrazzld/signup-api/internal/api/shared"
)

// AdaptRoute exposes a Controller as an http.HandlerFunc. The JSON object body
// becomes HTTPRequest.Body; when timeout is positive it bounds the context
// passed to the controller.
func AdaptRoute(c Controller, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := shared.DecodeJSONObject(w, r)
		if err != nil {
			status := http.StatusBadRequest
			if MapErrorToStatusCode(err) == http.StatusRequestEntityTooLarge {
				status = http.StatusRequestEntityTooLarge
			}
			shared.RespondWithErrorAndLog(w, r, status, "Invalid request format", err)
			return
		}

		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		WriteResponse(w, r, c.Handle(ctx, HTTPRequest{Body: body}))
	}
}

// WriteResponse serialises resp onto w. Error bodies are rendered through
// GetSafeErrorMessage; anything else is encoded as JSON.
func WriteResponse(w http.ResponseWriter, r *http.Request, resp HTTPResponse) {
	if err, ok := resp.Body.(error); ok {
		shared.RespondWithError(w, r, resp.StatusCode, GetSafeErrorMessage(err))
		return
	}
	shared.RespondWithJSON(w, r, resp.StatusCode, resp.Body)
}
