package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string
	LogLevel string

	// OpenRouter-compatible completion endpoint. The key is optional:
	// without one the resolver skips the remote tier and answers from
	// the local FAQ dataset.
	OpenRouterAPIURL string
	OpenRouterAPIKey string
	ChatModel        string

	// Embedding provider for the semantic FAQ mode: "openai", "gemini"
	// or empty to disable semantic matching.
	EmbeddingProvider string
	EmbeddingModel    string
	GeminiAPIKey      string

	SiteURL   string
	SiteTitle string
	BotName   string

	// Root of the web application tree (app/, components/, lib/) that
	// the discovery agent indexes.
	AppDir     string
	FaqDataDir string

	DatabaseURL      string
	UseInMemoryStore bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		OpenRouterAPIURL:  getEnv("OPEN_ROUTER_API_URL", "https://openrouter.ai/api/v1"),
		OpenRouterAPIKey:  getEnv("OPEN_ROUTER_API_KEY", ""),
		ChatModel:         getEnv("CHAT_MODEL", "openai/gpt-4o"),
		EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", ""),
		EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		SiteURL:           getEnv("SITE_URL", "http://localhost:3000"),
		SiteTitle:         getEnv("SITE_TITLE", "LogisticsFuture"),
		BotName:           getEnv("BOT_NAME", "Nana"),
		AppDir:            getEnv("APP_DIR", "."),
		FaqDataDir:        getEnv("FAQ_DATA_DIR", "lib/data"),
		DatabaseURL:       getEnv("DATABASE_URL", "chatbot.db"),
		UseInMemoryStore:  getEnvAsBool("USE_IN_MEMORY_STORE", false),
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
