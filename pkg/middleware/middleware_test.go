package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"trainbook/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	var seen string
	h := RequestLogging(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestLogging_KeepsCallerRequestID(t *testing.T) {
	id := uuid.New().String()
	var seen string
	h := RequestLogging(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, id, seen)
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestContentTypeValidation(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		allowed     []string
		wantStatus  int
	}{
		{name: "json post", method: http.MethodPost, contentType: "application/json; charset=utf-8", wantStatus: http.StatusOK},
		{name: "form post rejected", method: http.MethodPost, contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusUnsupportedMediaType},
		{name: "missing header rejected", method: http.MethodPost, wantStatus: http.StatusUnsupportedMediaType},
		{name: "get is not checked", method: http.MethodGet, wantStatus: http.StatusOK},
		{
			name:        "multipart allowed when listed",
			method:      http.MethodPost,
			contentType: "multipart/form-data; boundary=xyz",
			allowed:     []string{ContentTypeJSON, ContentTypeMultipart},
			wantStatus:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ContentTypeValidation(logger.Discard(), tt.allowed...)(http.HandlerFunc(okHandler))
			req := httptest.NewRequest(tt.method, "/api/schedule", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMaxRequestSize(t *testing.T) {
	h := MaxRequestSize(4, map[string]int64{"/api/parse_ids": 64})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parse_ids", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestTimeout(t *testing.T) {
	h := RequestTimeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(30 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), "Request timeout")
	assert.NotContains(t, rec.Body.String(), "late")
}

func TestRequestTimeout_FastHandler(t *testing.T) {
	h := RequestTimeout(time.Second)(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	limiter := NewClientRateLimiter(2, time.Hour, nil, logger.Discard())
	defer limiter.Stop()
	h := RateLimit(limiter)(http.HandlerFunc(okHandler))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4242"
	assert.Equal(t, "192.168.1.5", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestIdempotency_ReplaysSuccessfulPost(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	var calls atomic.Int32
	h := Idempotency(store, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"call":` + string(rune('0'+n)) + `}`))
	}))

	send := func(path, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
		req.Header.Set(IdempotencyKeyHeader, key)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := send("/api/schedule", "abc")
	second := send("/api/schedule", "abc")
	other := send("/api/parse_ids", "abc")

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotentReplayedHeader))
	assert.NotEqual(t, first.Body.String(), other.Body.String())
}

func TestIdempotency_DoesNotCacheErrors(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	var calls atomic.Int32
	h := Idempotency(store, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/schedule", nil)
		req.Header.Set(IdempotencyKeyHeader, "abc")
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, int32(2), calls.Load())
}

func TestInMemoryIdempotencyStore_Expiry(t *testing.T) {
	store := NewInMemoryIdempotencyStore(10 * time.Millisecond)
	defer store.Stop()

	store.Set("k", &CachedResponse{StatusCode: http.StatusOK})
	_, ok := store.Get("k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = store.Get("k")
	assert.False(t, ok)
}
