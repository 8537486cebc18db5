package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/spf13/viper"
)

const insecureDefaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	RateLimit          string // limiter format, e.g. "100-M"

	PosthogAPIKey   string
	PosthogEndpoint string

	// Itemized register
	ColumnMode        domain.ColumnMode
	MaxUploadBytes    int64
	ImportMappingFile string // Optional YAML header alias file for spreadsheet imports
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", insecureDefaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "qrt-closure")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("COLUMN_MODE", string(domain.ColumnModeCapped))
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)
	v.SetDefault("IMPORT_MAPPING_FILE", "")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		PosthogAPIKey:     v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:   v.GetString("POSTHOG_ENDPOINT"),
		ColumnMode:        domain.ColumnMode(strings.ToLower(v.GetString("COLUMN_MODE"))),
		MaxUploadBytes:    v.GetInt64("MAX_UPLOAD_BYTES"),
		ImportMappingFile: v.GetString("IMPORT_MAPPING_FILE"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	if cfg.JWTSecret == insecureDefaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr), slog.String("default", jwtExpiry.String()))
	}
	cfg.JWTExpiryDuration = jwtExpiry

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if !domain.ValidColumnMode(cfg.ColumnMode) {
		return nil, fmt.Errorf("invalid COLUMN_MODE %q: want %q or %q", cfg.ColumnMode, domain.ColumnModeCapped, domain.ColumnModeComplete)
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}

	return cfg, nil
}
