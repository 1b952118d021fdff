package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ranmdom/Desafio-Ray/internal/model"
)

// DefaultPlaylistID is the F1 highlights playlist ingested when no override
// is configured.
const DefaultPlaylistID = "PLfoNZDHitwjUv0pjTwlV1vzaE0r7UDVDR"

type Config struct {
	APIKey      string
	DatabaseURL string
	PlaylistID  string
	Window      model.DateWindow
	APIBaseURL  string

	Port        string
	MetricsPort string
	RedisURL    string
	LogLevel    string
	Environment string
	CORSOrigins string

	// Schedule is a cron expression; empty means a single pipeline run.
	Schedule string
}

// Load reads the configuration from the environment (after loading .env if
// present). It fails fast when a required value is missing, before any
// network or database activity happens.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY is required")
	}
	dbURL := os.Getenv("SUPABASE_DB_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("SUPABASE_DB_URL is required")
	}

	window, err := loadWindow()
	if err != nil {
		return nil, err
	}

	return &Config{
		APIKey:      apiKey,
		DatabaseURL: dbURL,
		PlaylistID:  getEnv("YOUTUBE_PLAYLIST_ID", DefaultPlaylistID),
		Window:      window,
		APIBaseURL:  getEnv("YOUTUBE_API_BASE_URL", "https://www.googleapis.com/youtube/v3"),
		Port:        getEnv("PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		RedisURL:    getEnv("REDIS_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		Schedule:    getEnv("PIPELINE_SCHEDULE", ""),
	}, nil
}

// loadWindow parses the ingestion window, defaulting to calendar year 2024.
// The window is half-open: [start, end).
func loadWindow() (model.DateWindow, error) {
	start, err := parseTimeEnv("WINDOW_START", "2024-01-01T00:00:00Z")
	if err != nil {
		return model.DateWindow{}, err
	}
	end, err := parseTimeEnv("WINDOW_END", "2025-01-01T00:00:00Z")
	if err != nil {
		return model.DateWindow{}, err
	}
	if !end.After(start) {
		return model.DateWindow{}, fmt.Errorf("WINDOW_END must be after WINDOW_START")
	}
	return model.DateWindow{Start: start, End: end}, nil
}

func parseTimeEnv(key, fallback string) (time.Time, error) {
	raw := getEnv(key, fallback)
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", key, err)
	}
	return t, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
