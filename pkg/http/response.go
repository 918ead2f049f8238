package http

import (
	"encoding/json"
	"net/http"
	"reflect"

	apperrors "trainbook/pkg/errors"
)

const StatusOK = "ok"

type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes err as {"error": message}. Errors that are not AppErrors
// become a generic 500 so internals never leak to clients.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	statusCode := appErr.StatusCode()
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	return WriteJSON(w, statusCode, ErrorResponse{
		Error:   appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	})
}

// WriteSuccess writes {"status":"ok","data":data}.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Status: StatusOK, Data: data})
}

// WriteList writes items as a bare JSON array; nil slices become [].
func WriteList(w http.ResponseWriter, items any) error {
	v := reflect.ValueOf(items)
	if !v.IsValid() || (v.Kind() == reflect.Slice && v.IsNil()) {
		items = []any{}
	}
	return WriteJSON(w, http.StatusOK, items)
}
