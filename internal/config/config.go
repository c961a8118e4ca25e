package config

import (
	"os"
	"strconv"
)

// MongoConfig holds MongoDB connection settings for the metadata store.
type MongoConfig struct {
	URI      string
	Database string
}

// PostgresConfig holds the connection settings for the shared PostgreSQL
// server that backs managed EDC connector datasources.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	// WaitTimeoutSec bounds how long connector startup waits for the server.
	WaitTimeoutSec int
}

// DockerConfig holds settings for the Docker runtime that hosts managed
// connectors and the transfer callback logger.
type DockerConfig struct {
	// NetworkName is the external Docker network shared by all connectors.
	NetworkName string
	// RuntimePath is the host path mounted into connector containers; it must
	// match the directory where runtime files are generated.
	RuntimePath string
	// DeployType selects how managed connectors are addressed: "localhost"
	// targets published ports, anything else targets container hostnames.
	DeployType string
	// LoggerPort is the published port of the http-logger container.
	LoggerPort string
}

// MinIOConfig holds object storage settings for the data pond.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig holds JWT signing settings.
type AuthConfig struct {
	Secret       string
	TokenTTLMins int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Mongo    MongoConfig
	Postgres PostgresConfig
	Docker   DockerConfig
	MinIO    MinIOConfig
	Auth     AuthConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DB", "edc_backend"),
		},
		Postgres: PostgresConfig{
			Host:           getEnv("POSTGRES_HOST", "localhost"),
			Port:           getEnv("POSTGRES_PORT", "5432"),
			User:           getEnv("POSTGRES_USER", "postgres"),
			Password:       getEnv("POSTGRES_PASS", "admin"),
			WaitTimeoutSec: getEnvInt("POSTGRES_WAIT_TIMEOUT_SEC", 30),
		},
		Docker: DockerConfig{
			NetworkName: getEnv("NETWORK_NAME", "edc-network"),
			RuntimePath: getEnv("RUNTIME_PATH", "runtime"),
			DeployType:  getEnv("TYPE", "localhost"),
			LoggerPort:  getEnv("HTTP_SERVER_PORT", "4000"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			Secret:       getEnv("JWT_SECRET", ""),
			TokenTTLMins: getEnvInt("JWT_TTL_MINUTES", 60),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
