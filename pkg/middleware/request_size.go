package middleware

import "net/http"

// MaxRequestSize caps request bodies at limit bytes. Paths listed in
// overrides get their own cap, e.g. file uploads.
func MaxRequestSize(limit int64, overrides map[string]int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			max := limit
			if override, ok := overrides[r.URL.Path]; ok {
				max = override
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, max)
			}
			next.ServeHTTP(w, r)
		})
	}
}
