package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Events   EventsConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port                string
	Environment         string
	LogFilePath         string
	ActivityLogFilePath string
	CorsAllowedOrigins  string
}

type DatabaseConfig struct {
	Driver          string // "postgres" or "sqlite"
	Connection      string
	AutoMigrate     bool
	ConnectAttempts uint
	LogLevel        string // "silent", "error", "warn", "info"
}

type AIConfig struct {
	LLMProvider   string // "ollama"
	LLMModel      string
	OllamaBaseURL string
	Timeout       time.Duration
	CacheTTL      time.Duration
}

type EventsConfig struct {
	NatsURL string
	Topic   string
}

type TracingConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:                getEnv("APP_PORT", "5000"),
			Environment:         getEnv("GO_ENV", "development"),
			LogFilePath:         getEnv("LOG_FILE_PATH", "logs/app.log"),
			ActivityLogFilePath: getEnv("ACTIVITY_LOG_FILE_PATH", "logs/activity.log"),
			CorsAllowedOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			Connection:      getEnv("DB_CONNECTION_STRING", ""),
			AutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),
			ConnectAttempts: uint(getEnvAsInt("DB_CONNECT_ATTEMPTS", 3)),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:      getEnv("LLM_MODEL", "mistral"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Timeout:       getEnvAsDuration("LLM_TIMEOUT", 120*time.Second),
			CacheTTL:      getEnvAsDuration("LLM_CACHE_TTL", 0),
		},
		Events: EventsConfig{
			NatsURL: getEnv("NATS_URL", ""),
			Topic:   getEnv("ACTIVITY_TOPIC_NAME", "BOARD_ACTIVITY"),
		},
		Tracing: TracingConfig{
			Enabled:      getEnvAsBool("OTEL_ENABLED", false),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "bulletin-board-backend"),
		},
	}
}

// getEnv treats a variable set to "" the same as an unset one.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go duration strings ("90s", "2m") or a bare number of seconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
