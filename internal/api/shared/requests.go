package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps the size of a decoded request body.
const MaxRequestBodyBytes = 1 << 20

// ErrEmptyBody is returned when a request carries no JSON payload.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into the given value.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// DecodeJSONObject decodes a JSON object body into an untyped map. Field
// values keep their JSON types (string, float64, bool, nil, []any, map[string]any).
// A literal null body yields an empty map.
func DecodeJSONObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	}

	var body map[string]any
	if err := DecodeJSON(r, &body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}
