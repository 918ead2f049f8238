package middleware

import (
	"mime"
	"net/http"
	"slices"
	"strings"

	apperrors "trainbook/pkg/errors"
	httputil "trainbook/pkg/http"
	"trainbook/pkg/logger"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypeMultipart = "multipart/form-data"
)

// ContentTypeValidation rejects bodies whose media type is not in allowed.
// With no allowed types given, only JSON is accepted.
func ContentTypeValidation(log *logger.Logger, allowed ...string) func(http.Handler) http.Handler {
	if len(allowed) == 0 {
		allowed = []string{ContentTypeJSON}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requiresContentType(r.Method) {
				contentType := extractContentType(r.Header.Get("Content-Type"))

				if !slices.Contains(allowed, contentType) {
					rejectInvalidContentType(w, log, r, contentType, allowed)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requiresContentType(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func extractContentType(header string) string {
	if header == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.Split(header, ";")[0]))
	}
	return mediaType
}

func rejectInvalidContentType(w http.ResponseWriter, log *logger.Logger, r *http.Request, contentType string, allowed []string) {
	log.Warn("Invalid Content-Type header",
		"request_id", RequestIDFromContext(r.Context()),
		"content_type", contentType,
		"path", r.URL.Path,
		"method", r.Method,
	)

	appErr := apperrors.New(apperrors.CodeInvalidInput,
		"Content-Type must be one of: "+strings.Join(allowed, ", "),
		http.StatusUnsupportedMediaType)
	if err := httputil.WriteError(w, appErr); err != nil {
		log.Error("failed to write error response", "middleware", "ContentTypeValidation", "error", err)
	}
}
