package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// FallbackExchangeRate is used for currencies missing from the rate table
// when DEFAULT_EXCHANGE_RATE is unset or invalid.
var FallbackExchangeRate = decimal.NewFromFloat(1300.0)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// DefaultExchangeRate is the local-currency rate used for unconfigured currencies.
	DefaultExchangeRate decimal.Decimal

	// RateLimit uses the ulule/limiter format, e.g. "100-M".
	RateLimit string

	// RateLimitRedisURL, when set, shares rate limit counters between instances.
	RateLimitRedisURL string

	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	return loadFrom(viper.New()), nil
}

func loadFrom(v *viper.Viper) *Config {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_EXCHANGE_RATE", "1300.0")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("RATE_LIMIT_REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")

	// Environment variables override the .env file, which overrides the defaults above.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel)
	}

	rateStr := v.GetString("DEFAULT_EXCHANGE_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || !rate.IsPositive() {
		rate = FallbackExchangeRate
		log.Printf("Warning: Invalid value for DEFAULT_EXCHANGE_RATE ('%s'). Defaulting to %s.\n", rateStr, rate)
	}
	cfg.DefaultExchangeRate = rate

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.RateLimitRedisURL = v.GetString("RATE_LIMIT_REDIS_URL")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Usage analytics disabled.")
	}

	return cfg
}
