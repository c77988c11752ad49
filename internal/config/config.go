package config

import (
	"os"
	"strconv"
	"strings"
)

// Pinning providers understood by PINNING_PROVIDER.
const (
	ProviderPinata   = "pinata"
	ProviderFilebase = "filebase"
)

// DefaultPinataEndpoint is Pinata's pinFileToIPFS endpoint.
const DefaultPinataEndpoint = "https://api.pinata.cloud/pinning/pinFileToIPFS"

// MongoConfig holds document store connection settings.
type MongoConfig struct {
	URI               string
	Database          string
	Collection        string
	MaxPoolSize       int
	ConnectTimeoutSec int
}

// PinataConfig holds the Pinata credential and endpoint.
type PinataConfig struct {
	JWT      string
	Endpoint string
}

// FilebaseConfig holds settings for Filebase's S3-compatible IPFS buckets.
type FilebaseConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// PinningConfig selects the pinning provider and carries its settings.
type PinningConfig struct {
	Provider string
	Pinata   PinataConfig
	Filebase FilebaseConfig
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port        string
	BodyLimitMB int
	LogLevel    string
	Mongo       MongoConfig
	Pinning     PinningConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:        getEnv("PORT", "8080"),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 50),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Mongo: MongoConfig{
			URI:               getEnv("MONGO_URI", ""),
			Database:          getEnv("MONGO_DATABASE", "landregistry"),
			Collection:        getEnv("MONGO_COLLECTION", "lands"),
			MaxPoolSize:       getEnvInt("MONGO_MAX_POOL_SIZE", 20),
			ConnectTimeoutSec: getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 10),
		},
		Pinning: PinningConfig{
			Provider: strings.ToLower(getEnv("PINNING_PROVIDER", ProviderPinata)),
			Pinata: PinataConfig{
				JWT:      getEnv("PINATA_JWT", ""),
				Endpoint: getEnv("PINATA_ENDPOINT", DefaultPinataEndpoint),
			},
			Filebase: FilebaseConfig{
				Endpoint:  getEnv("FILEBASE_ENDPOINT", "s3.filebase.com"),
				AccessKey: getEnv("FILEBASE_ACCESS_KEY", ""),
				SecretKey: getEnv("FILEBASE_SECRET_KEY", ""),
				Bucket:    getEnv("FILEBASE_BUCKET", ""),
				UseSSL:    getEnvBool("FILEBASE_USE_SSL", true),
			},
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
