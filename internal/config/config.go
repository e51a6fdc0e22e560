package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries process-wide settings resolved once at startup.
type Config struct {
	Environment string
	HTTPAddr    string

	DatabaseDSN string

	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiImageModel string
	AITimeout        time.Duration

	FontPath        string
	FontFallbackURL string

	UploadDir     string
	UploadBaseURL string
	MaxUploadSize int64

	GenerateRateLimit  int
	GenerateRateWindow time.Duration

	Tracing TracingConfig
}

// TracingConfig configures the OTLP exporter.
type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

const (
	// Noto Sans JP regular, same source the poster fonts are served from.
	defaultFontURL = "https://fonts.gstatic.com/s/notosansjp/v52/-F6jfjtqLzI2JPCgQBnw7HFyzSD-AsregP8VFJEk757Y0rw_qMHVdbR2L8Y9QTJ1LwkRmR5GprQAe-T30Q.ttf"

	defaultMaxUploadSize = 5 << 20
)

// Load reads configuration from the environment. A .env file is honoured
// for local development when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment: getenv("VOICEPOST_ENV", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		DatabaseDSN: strings.TrimSpace(os.Getenv("DATABASE_DSN")),

		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiTextModel:  getenv("GEMINI_TEXT_MODEL", "gemini-3-flash-preview"),
		GeminiImageModel: getenv("GEMINI_IMAGE_MODEL", "gemini-3-flash-preview"),
		AITimeout:        getenvDuration("AI_TIMEOUT", 30*time.Second),

		FontPath:        getenv("POSTER_FONT_PATH", "assets/fonts/NotoSansJP-Regular.ttf"),
		FontFallbackURL: getenv("POSTER_FONT_URL", defaultFontURL),

		UploadDir:     strings.TrimSpace(os.Getenv("UPLOAD_DIR")),
		UploadBaseURL: getenv("UPLOAD_BASE_URL", "/uploads"),
		MaxUploadSize: getenvInt64("MAX_UPLOAD_SIZE", defaultMaxUploadSize),

		GenerateRateLimit:  int(getenvInt64("GENERATE_RATE_LIMIT", 30)),
		GenerateRateWindow: getenvDuration("GENERATE_RATE_WINDOW", time.Minute),

		Tracing: TracingConfig{
			Enabled:          getenvBool("OTEL_TRACING_ENABLED", false),
			ExporterEndpoint: getenv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
			ExporterProtocol: getenv("OTEL_EXPORTER_PROTOCOL", "grpc"),
			SamplingRatio:    getenvFloat("OTEL_SAMPLING_RATIO", 1.0),
		},
	}
	return cfg, nil
}

// IsProduction reports whether the process runs with production settings.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// GeminiConfigured reports whether the external text/image generator can be used.
func (c Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
