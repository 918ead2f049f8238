package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	apperrors "trainbook/pkg/errors"
	httputil "trainbook/pkg/http"
	"trainbook/pkg/logger"
)

func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					log.Error("Panic recovered",
						"request_id", RequestIDFromContext(r.Context()),
						"error", err,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)

					appErr := apperrors.Internal("Internal server error", errors.New("panic"))
					if writeErr := httputil.WriteError(w, appErr); writeErr != nil {
						log.Error("failed to write panic response", "error", writeErr)
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
