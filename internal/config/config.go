package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Upload configuration. TmpDir must live on the same filesystem as the
	// storage dirs so accepting an upload is a rename, not a copy.
	UploadRootDir     string
	CoverImageDir     string
	BodyImageDir      string
	AvatarDir         string
	TmpDir            string
	UploadMaxBytes    int64

	// Migrations applied on boot when MigrationsDir is non-empty.
	MigrationsDir string

	// Auth configuration
	JWTSecret string
	JWTTTL    time.Duration

	// Logging configuration
	LogLevel string
}

// DefaultUploadMaxBytes is the upload size ceiling (1 MiB).
const DefaultUploadMaxBytes = 1 << 20

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	uploadRoot := getEnv("UPLOAD_ROOT_DIR", "./public/upload")
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "blog_platform"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		UploadRootDir:       uploadRoot,
		CoverImageDir:       getEnv("COVER_IMAGE_DIR", filepath.Join(uploadRoot, "articles", "images")),
		BodyImageDir:        getEnv("BODY_IMAGE_DIR", filepath.Join(uploadRoot, "articles", "imgs")),
		AvatarDir:           getEnv("AVATAR_DIR", filepath.Join(uploadRoot, "avatars")),
		TmpDir:              getEnv("UPLOAD_TMP_DIR", filepath.Join(uploadRoot, "tmp")),
		UploadMaxBytes:      getEnvInt64("UPLOAD_MAX_BYTES", DefaultUploadMaxBytes),
		MigrationsDir:       getEnv("MIGRATIONS_DIR", "./migrations"),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		JWTTTL:              getEnvDuration("JWT_TTL", 60*24*time.Hour),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.UploadMaxBytes < 1 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 gets an environment variable as int64 with a default value.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
