package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort        string
	Env               string
	MySQLDSN          string
	RedisAddr         string
	RedisDB           int
	RedisPass         string
	JWTSecret         string
	AllowedOrigin     string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	UptimeRobotAPIKey string
	TurnstileSecret   string
	DiscordWebhookURL string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("PORT", "8080"),
		Env:               getEnv("APP_ENV", "development"),
		MySQLDSN:          mysqlDSN(),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		AllowedOrigin:     os.Getenv("ALLOWED_ORIGIN"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		UptimeRobotAPIKey: os.Getenv("UPTIMEROBOT_API_KEY"),
		TurnstileSecret:   os.Getenv("TURNSTILE_SECRET"),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
	}
}

// IsProduction reports whether error detail should be masked.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// IsTest reports whether rate limiting and CAPTCHA are bypassed.
func (c *Config) IsTest() bool {
	return c.Env == "test"
}

// mysqlDSN prefers an explicit MYSQL_DSN and otherwise assembles one from
// MYSQL_* parts, honoring the RAILWAY_-prefixed aliases some deployments set.
func mysqlDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}

	host := firstEnv("MYSQL_HOST", "RAILWAY_MYSQL_HOST")
	if host == "" {
		return "user:password@tcp(localhost:3306)/rootdex?charset=utf8mb4&parseTime=True&loc=Local"
	}
	port := firstEnvDefault("3306", "MYSQL_PORT", "RAILWAY_MYSQL_PORT")
	user := firstEnvDefault("root", "MYSQL_USER", "RAILWAY_MYSQL_USER")
	pass := firstEnv("MYSQL_PASSWORD", "RAILWAY_MYSQL_PASSWORD")
	name := firstEnvDefault("rootdex", "MYSQL_DATABASE", "RAILWAY_MYSQL_DATABASE")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func firstEnvDefault(def string, keys ...string) string {
	if v := firstEnv(keys...); v != "" {
		return v
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
