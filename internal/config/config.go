package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Ai     AIConfig
	Engine EngineConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	EmbedTopicName     string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	GeminiApiKey      string
}

// EngineConfig carries the detection and summarization constants. The
// summarizer divisors encode the reference ratios (minLength/3 fallback
// trigger, maxLength/5 word cap) without hard-coding them.
type EngineConfig struct {
	PlagiarismThreshold      float64
	SummaryMaxLength         int
	SummaryMinLength         int
	SummaryPrimarySentences  int
	SummaryFallbackSentences int
	SummaryMinLengthDivisor  int
	SummaryMaxLengthDivisor  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			EmbedTopicName:     getEnv("EMBED_DOCUMENT_TOPIC_NAME", "EMBED_DOCUMENT"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiApiKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Engine: EngineConfig{
			PlagiarismThreshold:      getEnvAsFloat("PLAGIARISM_THRESHOLD", 0.8),
			SummaryMaxLength:         getEnvAsInt("SUMMARY_MAX_LENGTH", 150),
			SummaryMinLength:         getEnvAsInt("SUMMARY_MIN_LENGTH", 30),
			SummaryPrimarySentences:  getEnvAsInt("SUMMARY_PRIMARY_SENTENCES", 3),
			SummaryFallbackSentences: getEnvAsInt("SUMMARY_FALLBACK_SENTENCES", 4),
			SummaryMinLengthDivisor:  getEnvAsInt("SUMMARY_MIN_LENGTH_DIVISOR", 3),
			SummaryMaxLengthDivisor:  getEnvAsInt("SUMMARY_MAX_LENGTH_DIVISOR", 5),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
