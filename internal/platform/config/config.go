package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	RedisURL       string
	Port           string
	IsProduction   bool
	MigrationsPath string

	JWTSecret string
	JWTIssuer string
	// AccessTokenExpiry bounds access tokens; RefreshTokenExpiry bounds
	// refresh tokens. Password reset tokens carry a fixed 15 minute expiry
	// and are not configurable.
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	// SMTP settings for reset-token delivery. When SMTPAddr is empty the
	// mailer falls back to logging the token instead of sending it.
	SMTPAddr string
	SMTPFrom string

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "dayboard-backend")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY", "15m")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY", "720h")
	viper.SetDefault("SMTP_ADDR", "")
	viper.SetDefault("SMTP_FROM", "no-reply@dayboard.local")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	accessExpiryStr := viper.GetString("ACCESS_TOKEN_EXPIRY")
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		accessExpiry = 15 * time.Minute
		log.Printf("Warning: Invalid value for ACCESS_TOKEN_EXPIRY ('%s'). Defaulting to %s.\n", accessExpiryStr, accessExpiry)
	}
	cfg.AccessTokenExpiry = accessExpiry

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = 30 * 24 * time.Hour
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry)
	}
	cfg.RefreshTokenExpiry = refreshExpiry

	cfg.SMTPAddr = viper.GetString("SMTP_ADDR")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
