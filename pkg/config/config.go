package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Google Sheets workbook
	SpreadsheetID     string `mapstructure:"SPREADSHEET_ID"`
	GoogleClientEmail string `mapstructure:"GOOGLE_CLIENT_EMAIL"`
	GooglePrivateKey  string `mapstructure:"GOOGLE_PRIVATE_KEY"`

	// Redis (optional; reads fall through to the workbook when unset)
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Read caching / background refresh
	CacheTTL        time.Duration `mapstructure:"CACHE_TTL"`
	RefreshInterval string        `mapstructure:"REFRESH_INTERVAL"`

	// Sheets API protection
	SheetsRateLimit         float64       `mapstructure:"SHEETS_RATE_LIMIT"`
	SheetsTimeout           time.Duration `mapstructure:"SHEETS_TIMEOUT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_EMAIL", "")
	viper.SetDefault("GOOGLE_PRIVATE_KEY", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("CACHE_TTL", "2m")
	viper.SetDefault("REFRESH_INTERVAL", "10m")
	viper.SetDefault("SHEETS_RATE_LIMIT", 1.0) // requests per second
	viper.SetDefault("SHEETS_TIMEOUT", "10s")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	// Service-account keys arrive with escaped newlines when set through env
	config.GooglePrivateKey = strings.ReplaceAll(config.GooglePrivateKey, `\n`, "\n")

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// HasSheetsCredentials reports whether a live workbook connection can be built.
// Without credentials the server runs on the bundled example dataset.
func (c *Config) HasSheetsCredentials() bool {
	return c.SpreadsheetID != "" && c.GoogleClientEmail != "" && c.GooglePrivateKey != ""
}
