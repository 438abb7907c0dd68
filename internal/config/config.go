package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Ai        AIConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	CompletedTopicName string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	LLMProvider        string // "ollama" or "openai"
	LLMModel           string
	OllamaBaseURL      string
	OpenAIAPIKey       string
	CallTimeoutSeconds int
}

type SchedulerConfig struct {
	MaxConcurrentTasks int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			CompletedTopicName: getEnv("ANALYSIS_COMPLETED_TOPIC_NAME", "ANALYSIS_COMPLETED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "ReviewAgent"),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:           getEnv("LLM_MODEL", "qwen2.5"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
			CallTimeoutSeconds: getEnvAsInt("LLM_CALL_TIMEOUT_SECONDS", 120),
		},
		Scheduler: SchedulerConfig{
			MaxConcurrentTasks: int64(getEnvAsInt("SCHEDULER_MAX_CONCURRENT_TASKS", 4)),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
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
