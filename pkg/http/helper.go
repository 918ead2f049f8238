package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "trainbook/pkg/errors"
)

// DecodeJSON reads a single JSON object from the request body into v.
// Unknown fields are ignored so older form clients keep working.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return apperrors.InvalidInput("Invalid request body")
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperrors.InvalidInput("Request body too large")
		}
		if errors.Is(err, io.EOF) {
			return apperrors.InvalidInput("Request body is empty")
		}
		return apperrors.InvalidInput("Invalid request body")
	}

	return nil
}
