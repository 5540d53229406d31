package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	AppEnv   string
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret               string
	RedisURL                string
	FirebaseCredentialsFile string

	PushTimeout               time.Duration
	LivePingSpec              string
	NotificationRetentionDays int
}

// LoadConfig reads the environment, after loading envFile when it exists.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	pushTimeout, err := cast.ToDurationE(getEnv("PUSH_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("PUSH_TIMEOUT: %w", err)
	}
	retentionDays, err := cast.ToIntE(getEnv("NOTIFICATION_RETENTION_DAYS", "30"))
	if err != nil {
		return Config{}, fmt.Errorf("NOTIFICATION_RETENTION_DAYS: %w", err)
	}

	cfg := Config{
		AppEnv:                    getEnv("APP_ENV", "production"),
		HTTPPort:                  getEnv("HTTP_PORT", "8080"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
		DBHost:                    getEnv("DB_HOST", "localhost"),
		DBPort:                    getEnv("DB_PORT", "5432"),
		DBUser:                    getEnv("DB_USER", "postgres"),
		DBPassword:                getEnv("DB_PASSWORD", ""),
		DBName:                    getEnv("DB_NAME", "fastfoodie"),
		DBSslMode:                 getEnv("DB_SSLMODE", "disable"),
		JWTSecret:                 getEnv("JWT_SECRET", ""),
		RedisURL:                  getEnv("REDIS_URL", ""),
		FirebaseCredentialsFile:   getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		PushTimeout:               pushTimeout,
		LivePingSpec:              getEnv("LIVE_PING_SPEC", ""),
		NotificationRetentionDays: retentionDays,
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// DSN is the postgres URL used by gorm and the migrator.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if v, found := os.LookupEnv(key); found && v != "" {
		return v
	}
	return fallback
}
