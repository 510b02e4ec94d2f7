package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	AnthropicAPIKey string
	OpenAIAPIKey    string
	ClaudeModel     string
	OpenAIModel     string
	PrimaryProvider string

	MaxTokens   int
	Temperature float64

	DefaultLanguage string
	MaxContentChars int

	UploadDirectory string
	MaxFileSize     int64
	TesseractCmd    string
}

// Load reads configuration from the environment, with .env support for local
// development. Every field has a usable default except the API keys, whose
// absence simply disables the matching gateway.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] No .env file found, using environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: getEnv("DB_URL", ""),

		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		ClaudeModel:     getEnv("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		PrimaryProvider: getEnv("PRIMARY_AI_PROVIDER", "claude"),

		MaxTokens:   getEnvInt("MAX_TOKENS", 1000),
		Temperature: getEnvFloat("TEMPERATURE", 0.7),

		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "es"),
		MaxContentChars: getEnvInt("MAX_CONTENT_CHARS", 8000),

		UploadDirectory: getEnv("UPLOAD_DIRECTORY", "uploads"),
		MaxFileSize:     getEnvInt64("MAX_FILE_SIZE", 10*1024*1024),
		TesseractCmd:    getEnv("TESSERACT_CMD", "tesseract"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[ERROR] Invalid integer for %s: %q, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("[ERROR] Invalid integer for %s: %q, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("[ERROR] Invalid float for %s: %q, using default %v", key, value, fallback)
		return fallback
	}
	return parsed
}
