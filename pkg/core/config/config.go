// Package config loads process configuration once at startup.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings is everything the batch reads from the environment. There
// are no command-line flags.
type Settings struct {
	CompaniesCSV string
	OutputDir    string
	PacingDelay  time.Duration
	GeminiAPIKey string
	TavilyAPIKey string
	DatabaseURL  string
}

// Load reads .env (if present), sanitizes telemetry-related variables
// and returns the settings. Call once during process initialization.
func Load() Settings {
	godotenv.Load()
	sanitizeTelemetryEnv()

	return Settings{
		CompaniesCSV: envOr("COMPANIES_CSV", "dados_empresas.csv"),
		OutputDir:    envOr("OUTPUT_DIR", "."),
		PacingDelay:  time.Duration(envIntOr("PACING_DELAY_SECONDS", 7)) * time.Second,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		TavilyAPIKey: os.Getenv("TAVILY_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}
}

// sanitizeTelemetryEnv clears the exporter variables that would turn on
// trace shipping inside the instrumented Google SDK dependencies. The
// batch wants no upstream telemetry.
func sanitizeTelemetryEnv() {
	os.Unsetenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	os.Unsetenv("OTEL_TRACES_EXPORTER")
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return fallback
}
