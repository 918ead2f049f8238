package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"
	DefaultEnvFile  = ".env"

	DefaultStoreBackend = StoreBackendWorkbook
	DefaultWorkbookPath = "календарь_обучения.xlsx"

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "trainbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024  // 1MB
	DefaultMaxUploadSize  = 10 * 1024 * 1024 // 10MB
	DefaultLockTTL        = 30 * time.Second

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
