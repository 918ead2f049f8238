package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	apperrors "trainbook/pkg/errors"
	httputil "trainbook/pkg/http"
	"trainbook/pkg/logger"

	"golang.org/x/time/rate"
)

type KeyExtractor func(r *http.Request) string

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter keeps one token bucket per client. A client may burst up
// to limit requests and then gets limit requests per window.
type ClientRateLimiter struct {
	mu           sync.Mutex
	clients      map[string]*clientLimiter
	limit        rate.Limit
	burst        int
	window       time.Duration
	keyExtractor KeyExtractor
	log          *logger.Logger
	stopCh       chan struct{}
	stopOnce     sync.Once
}

func NewClientRateLimiter(limit int, window time.Duration, extractor KeyExtractor, log *logger.Logger) *ClientRateLimiter {
	if extractor == nil {
		extractor = ClientIP
	}

	limiter := &ClientRateLimiter{
		clients:      make(map[string]*clientLimiter),
		limit:        rate.Every(window / time.Duration(limit)),
		burst:        limit,
		window:       window,
		keyExtractor: extractor,
		log:          log,
		stopCh:       make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *ClientRateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[key]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

// Allow reports whether the client identified by key may proceed now.
func (rl *ClientRateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

func (rl *ClientRateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for key, client := range rl.clients {
				if time.Since(client.lastSeen) > rl.window {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *ClientRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

func RateLimit(limiter *ClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limiter.keyExtractor(r)
			if key != "" && !limiter.Allow(key) {
				rejectRateLimited(w, limiter.log, r, key)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter, log *logger.Logger, r *http.Request, key string) {
	log.Warn("Rate limit exceeded",
		"request_id", RequestIDFromContext(r.Context()),
		"client", key,
		"path", r.URL.Path,
	)

	if err := httputil.WriteError(w, apperrors.TooManyRequests("Rate limit exceeded. Try again later.")); err != nil {
		log.Error("failed to write error response", "middleware", "RateLimit", "error", err)
	}
}

// ClientIP identifies the caller by the first X-Forwarded-For hop, falling
// back to the connection address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
