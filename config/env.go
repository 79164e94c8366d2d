package config

import (
	"os"
	"strconv"
)

// AppConfig holds the environment-driven settings that are read once
// at startup; connection secrets stay in the env.
type AppConfig struct {
	Port             string
	StoreBackend     string // mongo | memory
	SeedDemoData     bool
	EngineProvider   string // ollama | gemini | fake
	OllamaURL        string
	OllamaModel      string
	GeminiAPIKey     string
	GeminiModel      string
	IssueLimitPerDay int
}

// Load reads the application configuration from the environment.
func Load() *AppConfig {
	limit, err := strconv.Atoi(getEnv("ISSUE_LIMIT_PER_DAY", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	return &AppConfig{
		Port:             getEnv("PORT", "8080"),
		StoreBackend:     getEnv("STORE_BACKEND", "mongo"),
		SeedDemoData:     getEnv("SEED_DEMO_DATA", "false") == "true",
		EngineProvider:   getEnv("ENGINE_PROVIDER", "ollama"),
		OllamaURL:        getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:      getEnv("OLLAMA_MODEL", "qwen3:8b"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		IssueLimitPerDay: limit,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
