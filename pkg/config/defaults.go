// Package config provides centralized default values for the Royal Academy backend
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("Loading configuration overrides from .env file...")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Bucket Storage
	BucketBackend string // sqlite | libsql | badger | memory
	SQLitePath    string
	LibSQLURL     string
	LibSQLToken   string
	BadgerDir     string

	SlowQueryThreshold time.Duration

	// Content Cache
	CollectionTTL   time.Duration
	JanitorInterval time.Duration
	SeedOnStartup   bool

	// SSE Configuration
	MaxSSEConnections           int64
	SSEHeartbeatIntervalSeconds int

	// Admin Auth
	JWTSecret         string
	AdminPasswordHash string
	TokenLifetime     time.Duration

	// Media
	MaxImageBytes     int
	MaxImageDimension int

	// Contact / Email
	ResendAPIKey   string
	ContactEmailTo string
	EmailFrom      string
	EmailFromName  string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Bucket Storage
	BucketBackend = getEnvString("BUCKET_BACKEND", "sqlite")
	SQLitePath = getEnvString("SQLITE_PATH", "academy.db")
	LibSQLURL = getEnvString("LIBSQL_URL", "")
	LibSQLToken = getEnvString("LIBSQL_AUTH_TOKEN", "")
	BadgerDir = getEnvString("BADGER_DIR", "academy-badger")
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 50*time.Millisecond)

	// Content Cache
	CollectionTTL = time.Duration(getEnvInt("COLLECTION_TTL_HOURS", 24)) * time.Hour
	JanitorInterval = time.Duration(getEnvInt("CACHE_JANITOR_INTERVAL_MINUTES", 30)) * time.Minute
	SeedOnStartup = getEnvBool("SEED_ON_STARTUP", true)

	// SSE Configuration
	MaxSSEConnections = int64(getEnvInt("MAX_SSE_CONNECTIONS", 100))
	SSEHeartbeatIntervalSeconds = getEnvInt("SSE_HEARTBEAT_INTERVAL_SECONDS", 30)

	// Admin Auth
	JWTSecret = getEnvString("JWT_SECRET", "")
	AdminPasswordHash = getEnvString("ADMIN_PASSWORD_HASH", "")
	TokenLifetime = getEnvDuration("TOKEN_LIFETIME", 12*time.Hour)

	// Media
	MaxImageBytes = getEnvInt("MAX_IMAGE_BYTES", 4*1024*1024)
	MaxImageDimension = getEnvInt("MAX_IMAGE_DIMENSION", 1920)

	// Contact / Email
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	ContactEmailTo = getEnvString("CONTACT_EMAIL_TO", "office@royalacademy.edu.bd")
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@royalacademy.edu.bd")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "Royal Academy")
}
