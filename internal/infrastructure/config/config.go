package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port               string
	MongoURI           string
	MongoDBName        string
	JWTSecret          string
	JWTExpiry          time.Duration
	CORSOrigin         string
	RedisURL           string
	AppBaseURL         string
	GoogleClientID     string
	GoogleClientSecret string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "wuddevdet"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpiry:          time.Hour * time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 168)), // 7 days
		CORSOrigin:         getEnv("CORS_ORIGIN", "*"),
		RedisURL:           getEnv("REDIS_URL", ""),
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
	}
}

// check if Config implements IConfigProvider at compile time
var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetJWTExpiry returns the lifetime of issued bearer tokens.
func (c *Config) GetJWTExpiry() time.Duration {
	return c.JWTExpiry
}

// GetCORSOrigin returns the allowed CORS origin.
func (c *Config) GetCORSOrigin() string {
	return c.CORSOrigin
}

// GetGoogleClientID returns the Google OAuth client ID.
func (c *Config) GetGoogleClientID() string {
	return c.GoogleClientID
}

// GetGoogleClientSecret returns the Google OAuth client secret.
func (c *Config) GetGoogleClientSecret() string {
	return c.GoogleClientSecret
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
