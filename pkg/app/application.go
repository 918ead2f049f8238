package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"trainbook/pkg/config"
	"trainbook/pkg/contracts"
	"trainbook/pkg/middleware"
	"trainbook/pkg/workbook"

	"github.com/julienschmidt/httprouter"
)

// UploadPath is the only route allowed multipart bodies up to MaxUploadSize.
const UploadPath = "/api/parse_ids"

type Application struct {
	cfg              *config.Config
	server           *http.Server
	idempotencyStore *middleware.InMemoryIdempotencyStore
	rateLimiter      *middleware.ClientRateLimiter
	healthHandler    http.Handler
	appHTTPHandler   http.Handler
	shutdownHooks    []ShutdownHook
}

// ShutdownHook runs after the server stops accepting requests and before
// clients are closed.
type ShutdownHook func(ctx context.Context) error

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

func (a *Application) OnShutdown(hook ShutdownHook) {
	a.shutdownHooks = append(a.shutdownHooks, hook)
}

func (a *Application) SetApp(appHandlers ...contracts.Handler) {
	a.setHealthHandler()
	a.setAppHandler(appHandlers)
	a.setAppServer()
}

func (a *Application) setHealthHandler() {
	healthRouter := httprouter.New()
	NewHealthHandler(a.cfg.StoreBackend, a.readinessCheck(), a.cfg.Log).RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(a.cfg.Log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(a.cfg.Log)(healthHTTPHandler)
	a.healthHandler = healthHTTPHandler
	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) readinessCheck() ReadinessCheck {
	client := a.cfg.Client
	if a.cfg.UsesMongo() {
		return func(ctx context.Context) error {
			return client.Mongo.Ping(ctx)
		}
	}
	return func(ctx context.Context) error {
		if client.Workbook == nil {
			return errors.New("workbook is not open")
		}
		_, err := client.Workbook.Rows(workbook.SheetSchedule)
		return err
	}
}

func (a *Application) setAppHandler(appHandlers []contracts.Handler) {
	appRouter := httprouter.New()
	for _, h := range appHandlers {
		h.RegisterRoutes(appRouter)
	}
	if a.cfg.StaticDir != "" {
		appRouter.NotFound = http.FileServer(http.Dir(a.cfg.StaticDir))
		a.cfg.Log.Info("Serving static files", "dir", a.cfg.StaticDir)
	}

	a.idempotencyStore = middleware.NewInMemoryIdempotencyStore(a.cfg.IdempotencyTTL)
	a.rateLimiter = middleware.NewClientRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		middleware.ClientIP,
		a.cfg.Log,
	)

	var appHTTPHandler http.Handler = appRouter
	appHTTPHandler = middleware.Idempotency(a.idempotencyStore, middleware.IdempotencyKeyHeader)(appHTTPHandler)
	appHTTPHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHTTPHandler)
	appHTTPHandler = middleware.RateLimit(a.rateLimiter)(appHTTPHandler)
	appHTTPHandler = middleware.ContentTypeValidation(a.cfg.Log, middleware.ContentTypeJSON, middleware.ContentTypeMultipart)(appHTTPHandler)
	appHTTPHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize), map[string]int64{
		UploadPath: int64(a.cfg.MaxUploadSize),
	})(appHTTPHandler)
	appHTTPHandler = middleware.RequestLogging(a.cfg.Log)(appHTTPHandler)
	appHTTPHandler = middleware.Recovery(a.cfg.Log)(appHTTPHandler)
	a.appHTTPHandler = appHTTPHandler
	a.cfg.Log.Info("Application endpoints configured with full middleware stack")
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHTTPHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

// Handler returns the root handler, for tests.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.runShutdownHooks(ctx)

	a.cfg.Log.Info("Stopping background workers...")
	a.Stop()
	a.cfg.GracefulShutdown()

	a.cfg.Log.Info("Server stopped gracefully")
}

func (a *Application) runShutdownHooks(ctx context.Context) {
	for _, hook := range a.shutdownHooks {
		if err := hook(ctx); err != nil {
			a.cfg.Log.Error("Shutdown hook failed", "error", err)
		}
	}
}

// Stop releases the middleware background workers.
func (a *Application) Stop() {
	if a.idempotencyStore != nil {
		a.idempotencyStore.Stop()
	}
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
}
