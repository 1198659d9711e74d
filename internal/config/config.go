package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Session SessionConfig
	Geocode GeocodeConfig
	RefData RefDataConfig
	Logger  LoggerConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// BackendConfig holds the upstream marketplace API configuration.
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// RedisConfig holds the session persistence configuration. When disabled,
// session state is held in process memory and lost on restart.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// SessionConfig holds browser session configuration.
type SessionConfig struct {
	CookieName string
	TTLSeconds int
}

// GeocodeConfig holds the address autocomplete provider configuration.
type GeocodeConfig struct {
	BaseURL     string
	UserAgent   string
	CountryCode string
	MaxResults  int
}

// RefDataConfig holds reference data (locations, category styles) loading
// configuration. The built-in dataset is used unless a file or S3 override
// is configured.
type RefDataConfig struct {
	FilePath  string
	S3Enabled bool
	S3Bucket  string
	S3Region  string
	S3Key     string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_API_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT", 10),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "sf_session"),
			TTLSeconds: getEnvAsInt("SESSION_TTL", 30*24*60*60),
		},
		Geocode: GeocodeConfig{
			BaseURL:     getEnv("GEOCODE_URL", "https://nominatim.openstreetmap.org/search"),
			UserAgent:   getEnv("GEOCODE_USER_AGENT", "storefront/1.0"),
			CountryCode: getEnv("GEOCODE_COUNTRY", "nz"),
			MaxResults:  getEnvAsInt("GEOCODE_MAX_RESULTS", 8),
		},
		RefData: RefDataConfig{
			FilePath:  getEnv("REFDATA_FILE", ""),
			S3Enabled: getEnvAsBool("REFDATA_S3_ENABLED", false),
			S3Bucket:  getEnv("REFDATA_S3_BUCKET", ""),
			S3Region:  getEnv("REFDATA_S3_REGION", "ap-southeast-2"),
			S3Key:     getEnv("REFDATA_S3_KEY", "refdata/locations.json"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend API URL is required")
	}

	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("invalid backend API URL: %w", err)
	}

	if c.Backend.TimeoutSeconds < 1 {
		return fmt.Errorf("backend timeout must be at least 1 second")
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis address is required when redis is enabled")
	}

	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	if c.Session.TTLSeconds < 1 {
		return fmt.Errorf("session TTL must be at least 1 second")
	}

	if c.Geocode.BaseURL == "" {
		return fmt.Errorf("geocode URL is required")
	}

	if c.Geocode.MaxResults < 1 || c.Geocode.MaxResults > 50 {
		return fmt.Errorf("geocode max results must be between 1 and 50")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.RefData.S3Enabled {
		if c.RefData.S3Bucket == "" {
			return fmt.Errorf("S3 bucket is required when refdata S3 is enabled")
		}
		if c.RefData.S3Region == "" {
			return fmt.Errorf("S3 region is required when refdata S3 is enabled")
		}
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
