package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"trainbook/pkg/client"
	kafka_config "trainbook/pkg/kafka/config"
	"trainbook/pkg/logger"

	"github.com/joho/godotenv"
)

const (
	StoreBackendWorkbook = "workbook"
	StoreBackendMongo    = "mongo"
)

type Config struct {
	Port      string
	StaticDir string

	StoreBackend string
	WorkbookPath string

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int
	MaxUploadSize  int
	LockTTL        time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Kafka *kafka_config.Config

	Log    *logger.Logger
	Client *client.Client
}

// Load reads .env (if present) and the environment, and exits the process
// when the result is invalid.
func Load(serviceName string) *Config {
	cfg, err := LoadFromEnv(serviceName)
	if err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// LoadFromEnv is Load without the exit. The returned config always carries a
// usable logger, even when err is not nil.
func LoadFromEnv(serviceName string) (*Config, error) {
	envErr := loadEnvFile(getEnvStr(EnvFile, DefaultEnvFile))

	cfg := &Config{
		Port:      getEnvStr(EnvPort, DefaultPort),
		StaticDir: getEnvStr(EnvStaticDir, ""),

		StoreBackend: strings.ToLower(getEnvStr(EnvStoreBackend, DefaultStoreBackend)),
		WorkbookPath: getEnvStr(EnvWorkbookPath, DefaultWorkbookPath),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		MaxUploadSize:  getEnvNum(EnvMaxUploadSize, DefaultMaxUploadSize),
		LockTTL:        getEnvDuration(EnvLockTTL, DefaultLockTTL),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    getEnvStr(EnvLogFormat, logger.JSON),
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	if envErr != nil {
		return cfg, envErr
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		return cfg, err
	}
	cfg.Kafka = kafkaCfg

	return cfg, cfg.Validate()
}

// loadEnvFile loads key=value pairs from path without overriding variables
// already set in the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) UsesMongo() bool {
	return cfg.StoreBackend == StoreBackendMongo
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch cfg.StoreBackend {
	case StoreBackendWorkbook:
		if strings.TrimSpace(cfg.WorkbookPath) == "" {
			errors = append(errors, "WorkbookPath cannot be empty when STORE_BACKEND=workbook")
		} else if !strings.HasSuffix(strings.ToLower(cfg.WorkbookPath), ".xlsx") {
			errors = append(errors, fmt.Sprintf("WorkbookPath must point to an .xlsx file, got: %s", cfg.WorkbookPath))
		}
	case StoreBackendMongo:
		if cfg.MongoURI == "" {
			errors = append(errors, "MongoURI cannot be empty")
		} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	default:
		errors = append(errors, fmt.Sprintf("StoreBackend must be one of [%s, %s], got: %s", StoreBackendWorkbook, StoreBackendMongo, cfg.StoreBackend))
	}

	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.LockTTL <= 0 {
		errors = append(errors, fmt.Sprintf("LockTTL must be positive, got: %s", cfg.LockTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.MaxUploadSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxUploadSize must be positive, got: %d", cfg.MaxUploadSize))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"static_dir", cfg.StaticDir,
		"store_backend", cfg.StoreBackend,
		"workbook_path", cfg.WorkbookPath,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"max_upload_size", cfg.MaxUploadSize,
		"lock_ttl", cfg.LockTTL,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
	if cfg.Kafka != nil {
		cfg.Kafka.LogConfiguration(cfg.Log.Info)
	}
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log, cfg.ShutdownTimeout)
}
