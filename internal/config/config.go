package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	scheduleFilename = ".study_schedule.json"
)

type Config struct {
	Addr            string
	VocabDir        string
	ScheduleBackend string
	SchedulePath    string
	DBPath          string
	StaticDir       string
	StudyTimezone   string
	LogLevel        string

	GeminiAPIKey     string
	GeminiModel      string
	GeminiBaseURL    string
	GeminiMaxRetries int
	GeminiRetryDelay time.Duration
	GeminiTimeout    time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	addr := ":3000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	vocabDir := envOr("VOCAB_DIR", "vocabulary_files")

	return Config{
		Addr:            envOr("ADDR", addr),
		VocabDir:        vocabDir,
		ScheduleBackend: strings.ToLower(envOr("SCHEDULE_BACKEND", BackendFile)),
		SchedulePath:    envOr("SCHEDULE_PATH", filepath.Join(vocabDir, scheduleFilename)),
		DBPath:          envOr("DB_PATH", "file:vocabflash.db"),
		StaticDir:       envOr("STATIC_DIR", "public"),
		StudyTimezone:   envOr("STUDY_TIMEZONE", "UTC"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),

		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:    os.Getenv("GEMINI_BASE_URL"),
		GeminiMaxRetries: envIntOr("GEMINI_MAX_RETRIES", 3),
		GeminiRetryDelay: time.Duration(envIntOr("GEMINI_RETRY_DELAY_MS", 2000)) * time.Millisecond,
		GeminiTimeout:    time.Duration(envIntOr("GEMINI_TIMEOUT_SECONDS", 60)) * time.Second,
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if strings.TrimSpace(c.VocabDir) == "" {
		errs = append(errs, errors.New("VOCAB_DIR cannot be empty"))
	}
	switch c.ScheduleBackend {
	case BackendFile:
		if strings.TrimSpace(c.SchedulePath) == "" {
			errs = append(errs, errors.New("SCHEDULE_PATH cannot be empty"))
		}
	case BackendSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			errs = append(errs, errors.New("DB_PATH cannot be empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("SCHEDULE_BACKEND must be %q or %q, got %q", BackendFile, BackendSQLite, c.ScheduleBackend))
	}
	if _, err := time.LoadLocation(c.StudyTimezone); err != nil || c.StudyTimezone == "" {
		errs = append(errs, fmt.Errorf("STUDY_TIMEZONE %q is not a known time zone", c.StudyTimezone))
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR, got %q", c.LogLevel))
	}
	if c.GeminiMaxRetries < 1 {
		errs = append(errs, fmt.Errorf("GEMINI_MAX_RETRIES must be at least 1, got %d", c.GeminiMaxRetries))
	}
	if c.GeminiRetryDelay < 0 {
		errs = append(errs, fmt.Errorf("GEMINI_RETRY_DELAY_MS cannot be negative, got %v", c.GeminiRetryDelay))
	}
	if c.GeminiTimeout <= 0 {
		errs = append(errs, fmt.Errorf("GEMINI_TIMEOUT_SECONDS must be positive, got %v", c.GeminiTimeout))
	}

	return errors.Join(errs...)
}

// Location returns the time zone in which "today" is computed.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.StudyTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MockMode reports whether extraction runs without a language model.
func (c Config) MockMode() bool {
	return strings.TrimSpace(c.GeminiAPIKey) == ""
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
