// Package config holds the process-wide configuration for the OCR toolkit.
//
// Values are resolved from environment variables with hardcoded defaults as
// fallback. A .env file, if present, is loaded once by main before the first
// call into this package (see github.com/joho/godotenv). The configuration is
// computed lazily on first access and cached for the process lifetime; Reload
// recomputes it and exists for tests and tooling only.
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"ocrtoolkit/internal/logger"
)

// Config is the immutable configuration snapshot used by every component.
// Components receive it explicitly; nothing reads the environment after load.
type Config struct {
	// HTTP Configuration
	Port string

	// File processing limits
	MaxFileSize int64 // maximum upload size in bytes

	// Confidence constants
	OCRConfidenceScore         float64 // OCR found text
	OCRNoTextConfidence        float64 // OCR found nothing
	PDFTextConfidence          float64 // embedded PDF text
	LanguageFallbackConfidence float64 // language detection fallback

	// Content type configuration
	AllowedContentTypes []string

	// Language detection fallbacks
	FallbackLanguage     string
	FallbackLanguageCode string

	// PDF rasterization
	PdftoppmPath string
	RasterDPI    int

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

var defaultContentTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/webp",
	"application/pdf",
}

// Load resolves a fresh Config from the environment. Malformed values are
// logged and replaced by their defaults rather than failing startup.
func Load() *Config {
	return &Config{
		Port:                       getEnv("PORT", "8000"),
		MaxFileSize:                getEnvInt64("OCR_MAX_FILE_SIZE", 10*1024*1024),
		OCRConfidenceScore:         getEnvFloat("OCR_CONFIDENCE_SCORE", 0.85),
		OCRNoTextConfidence:        getEnvFloat("OCR_NO_TEXT_CONFIDENCE", 0.0),
		PDFTextConfidence:          getEnvFloat("PDF_TEXT_CONFIDENCE", 0.95),
		LanguageFallbackConfidence: getEnvFloat("LANGUAGE_DETECTION_FALLBACK_CONFIDENCE", 0.5),
		AllowedContentTypes:        getEnvList("OCR_ALLOWED_CONTENT_TYPES", defaultContentTypes),
		FallbackLanguage:           getEnv("LANGUAGE_DETECTION_FALLBACK_LANGUAGE", "English"),
		FallbackLanguageCode:       getEnv("LANGUAGE_DETECTION_FALLBACK_CODE", "en"),
		PdftoppmPath:               getEnv("OCR_PDFTOPPM_PATH", "pdftoppm"),
		RasterDPI:                  int(getEnvInt64("OCR_RASTER_DPI", 150)),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
		LogFormat:                  getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:              getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:                  getEnv("LOG_OUTPUT", "stdout"),
	}
}

var (
	mu     sync.Mutex
	cached *Config
)

// Cached returns the process-wide configuration, loading it on first call.
// Concurrent first access yields exactly one Config instance.
func Cached() *Config {
	mu.Lock()
	defer mu.Unlock()
	if cached == nil {
		cached = Load()
	}
	return cached
}

// Reload discards the cached configuration and loads a new one. It is meant
// for tests and tooling, never for the request path.
func Reload() *Config {
	mu.Lock()
	defer mu.Unlock()
	cached = Load()
	return cached
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log := logger.WithComponent("config")
		log.Warn().
			Str("key", key).
			Str("value", value).
			Msg("Invalid integer value, using default")
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log := logger.WithComponent("config")
		log.Warn().
			Str("key", key).
			Str("value", value).
			Msg("Invalid float value, using default")
		return defaultValue
	}
	return f
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
