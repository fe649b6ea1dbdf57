package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the portal.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	Redis        RedisConfig
	Import       ImportConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// RedisConfig holds the optional Redis connection used by the ticket
// sequence counter. When disabled the counter stays in process memory.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// ImportConfig tunes the spreadsheet import pipeline.
type ImportConfig struct {
	SequenceBackend   string
	SequenceKeyPrefix string
	HeaderOverrides   map[string]string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Sequence backends supported by ImportConfig.
const (
	SequenceBackendMemory = "memory"
	SequenceBackendRedis  = "redis"
)

// importHeaderFields are the logical fields whose expected header name can
// be overridden through IMPORT_HEADER_<FIELD> variables.
var importHeaderFields = []string{
	"timestamp", "email", "name", "department", "serviceType", "priority",
	"title", "description", "category", "urgency", "impact", "phoneNumber",
	"managerApproval",
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	backend := strings.ToLower(getEnv("IMPORT_SEQUENCE_BACKEND", SequenceBackendMemory))
	if backend != SequenceBackendMemory && backend != SequenceBackendRedis {
		return nil, fmt.Errorf("invalid IMPORT_SEQUENCE_BACKEND: %q", backend)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "itsm-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Import: ImportConfig{
			SequenceBackend:   backend,
			SequenceKeyPrefix: getEnv("IMPORT_SEQUENCE_KEY_PREFIX", "itsm:ticket-seq"),
			HeaderOverrides:   loadHeaderOverrides(),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	if cfg.Import.SequenceBackend == SequenceBackendRedis && !cfg.Redis.Enabled {
		return nil, fmt.Errorf("IMPORT_SEQUENCE_BACKEND=redis requires REDIS_ENABLED=true")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func loadHeaderOverrides() map[string]string {
	overrides := map[string]string{}
	for _, field := range importHeaderFields {
		envKey := "IMPORT_HEADER_" + strings.ToUpper(field)
		if val := os.Getenv(envKey); val != "" {
			overrides[field] = val
		}
	}
	return overrides
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
