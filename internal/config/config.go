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
	Telegram  TelegramConfig
	Knowledge KnowledgeConfig
	Rewrite   RewriteConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	ReplyTopic         string
}

type DatabaseConfig struct {
	// Connection is the optional Postgres DSN for the reply archive;
	// empty disables archiving.
	Connection string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	User     string
	Password string
	// Inbox is where contact-form submissions land.
	Inbox string
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
	// APIBaseURL is overridable for tests; empty means the public API.
	APIBaseURL string
}

type KnowledgeConfig struct {
	// Corpus selects a built-in corpus ("markdown" or "tagged");
	// FilePath overrides it with a JSON corpus file.
	Corpus   string
	FilePath string
}

type RewriteConfig struct {
	// Endpoint enables the optional rewrite stage when set.
	Endpoint       string
	TimeoutSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", ""),
			ReplyTopic:         getEnv("RELAY_REPLY_TOPIC_NAME", "RELAY_REPLY_STORED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Secure:   getEnvAsBool("SMTP_SECURE", false),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			Inbox:    getEnv("MY_EMAIL", ""),
		},
		Telegram: TelegramConfig{
			BotToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:     getEnv("TELEGRAM_CHAT_ID", ""),
			APIBaseURL: getEnv("TELEGRAM_API_BASE_URL", ""),
		},
		Knowledge: KnowledgeConfig{
			Corpus:   getEnv("KB_CORPUS", "markdown"),
			FilePath: getEnv("KB_FILE_PATH", ""),
		},
		Rewrite: RewriteConfig{
			Endpoint:       getEnv("REWRITE_ENDPOINT", ""),
			TimeoutSeconds: getEnvAsInt("REWRITE_TIMEOUT_SECONDS", 5),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
