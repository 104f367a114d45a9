// Package config loads ambient configuration from the environment and an
// optional .env file, following the same "try repo-root .env, fall back to
// cwd, never fail if absent" convention the rest of the ecosystem uses.
package config

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all ambient configuration the core needs to run: which
// translation generator to call by default, how lessons are tuned, and how
// verbosely to log.
type Config struct {
	Environment string
	Generator   GeneratorConfig
	Lesson      LessonConfig
	Logging     LoggingConfig
}

// GeneratorConfig configures the default TextGenerator, used when a user has
// not configured their own provider/API key.
type GeneratorConfig struct {
	Provider  string
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// LessonConfig tunes the knowledge-set selection algorithms.
type LessonConfig struct {
	NewCardsPerLesson int
	FixationWindow    int // hours
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables, trying a .env file
// at the repo root first and falling back to the current directory. Missing
// .env files are not an error: every setting has a usable default.
func Load() *Config {
	_, b, _, _ := runtime.Caller(0)
	repoRoot := filepath.Join(filepath.Dir(b), "..", "..")
	envPath := filepath.Join(repoRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		godotenv.Load()
	}

	env := getEnv("ENVIRONMENT", "development")

	generatorProvider := getEnv("GENERATOR_PROVIDER", "")
	generatorAPIKey := getEnv("GENERATOR_API_KEY", "")
	if env == "production" && generatorProvider != "" && generatorAPIKey == "" {
		log.Fatal("FATAL: GENERATOR_API_KEY must be set when GENERATOR_PROVIDER is configured in production")
	}

	return &Config{
		Environment: env,
		Generator: GeneratorConfig{
			Provider:  generatorProvider,
			APIKey:    generatorAPIKey,
			BaseURL:   getEnv("GENERATOR_BASE_URL", "https://api.openai.com/v1"),
			Model:     getEnv("GENERATOR_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvInt("GENERATOR_MAX_TOKENS", 1024),
		},
		Lesson: LessonConfig{
			NewCardsPerLesson: getEnvInt("LESSON_NEW_CARDS", 5),
			FixationWindow:    getEnvInt("FIXATION_WINDOW_HOURS", 24),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
