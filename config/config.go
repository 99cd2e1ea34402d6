package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	Port           string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBName         string
	TokenSecret    string
	Environment    string
	AllowedOrigins []string
}

func NewConfig() *Config {
	allowedOrigins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		allowedOrigins = strings.Split(raw, ",")
	}

	return &Config{
		Port:           getEnvOrDefault("PORT", "5000"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getEnvOrDefault("DB_HOST", "localhost:27017"),
		DBName:         getEnvOrDefault("DB_NAME", "doctorsPortal"),
		TokenSecret:    os.Getenv("ACCESS_TOKEN_SECRET"),
		Environment:    getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins: allowedOrigins,
	}
}

// Validate rejects configurations the service cannot run with. The signing
// secret is required up front so token issuance never fails halfway in.
func (c *Config) Validate() error {
	if c.TokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is not set")
	}
	if c.DBHost == "" {
		return errors.New("DB_HOST is not set")
	}
	return nil
}

// MongoURI assembles the connection string; credentials are optional for
// local development.
func (c *Config) MongoURI() string {
	if c.DBUser == "" {
		return "mongodb://" + c.DBHost
	}
	return "mongodb+srv://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + "/?retryWrites=true&w=majority"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
