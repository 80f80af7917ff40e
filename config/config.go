package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Origins the clinic's own frontends are served from.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
	"https://www.ziahomeopethic.online",
	"https://ziahomeopethic.online",
}

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Comma-separated proxy IPs/CIDRs whose X-Forwarded-For is believed.
	// Empty trusts none.
	TrustedProxiesList string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB configuration.
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseName     string `mapstructure:"DATABASE_NAME"`
	DBTimeoutSeconds int    `mapstructure:"DB_TIMEOUT_SECONDS"`

	// CORS.
	FrontendURL string `mapstructure:"FRONTEND_URL"`
	AdminURL    string `mapstructure:"ADMIN_URL"`

	ClinicTimezone string `mapstructure:"CLINIC_TIMEZONE"`

	// Redis configuration. Slot locking needs REDIS_ADDR.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB   int    `mapstructure:"REDIS_LOCK_DB"`
	SlotLocking   bool   `mapstructure:"SLOT_LOCKING"`

	HealthCheckIntervalSeconds int `mapstructure:"HEALTH_CHECK_INTERVAL_SECONDS"`
}

var AppConfig Config

// LoadConfig reads config.yaml (from "." or "./config") and the environment,
// environment taking precedence, into AppConfig. A .env file in the working
// directory is loaded first; it never overrides variables already set.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	// MONGO_URI is the name the hosted deployment already uses.
	_ = v.BindEnv("DATABASE_URL", "DATABASE_URL", "MONGO_URI")

	// Set default values.
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "ziaclinic")
	v.SetDefault("DB_TIMEOUT_SECONDS", 5)
	v.SetDefault("FRONTEND_URL", "")
	v.SetDefault("ADMIN_URL", "")
	v.SetDefault("CLINIC_TIMEZONE", "Local")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_LOCK_DB", 0)
	v.SetDefault("SLOT_LOCKING", false)
	v.SetDefault("HEALTH_CHECK_INTERVAL_SECONDS", 30)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return &AppConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins is the CORS allow-list: the built-in origins plus the
// configured frontend and admin URLs. URLs without an http(s) scheme are
// ignored.
func (c *Config) AllowedOrigins() []string {
	origins := append([]string{}, defaultAllowedOrigins...)
	for _, o := range []string{c.FrontendURL, c.AdminURL} {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			log.Printf("Ignoring CORS origin %q: scheme required", o)
			continue
		}
		origins = append(origins, o)
	}
	return origins
}

// TrustedProxies splits TRUSTED_PROXIES. Nil means no proxy is trusted and
// the client IP is always the connection's peer address.
func (c *Config) TrustedProxies() []string {
	var proxies []string
	for _, p := range strings.Split(c.TrustedProxiesList, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

// DBTimeout bounds every single record-store call.
func (c *Config) DBTimeout() time.Duration {
	if c.DBTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.DBTimeoutSeconds) * time.Second
}

func (c *Config) HealthCheckInterval() time.Duration {
	if c.HealthCheckIntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.HealthCheckIntervalSeconds) * time.Second
}

// ClinicLocation resolves CLINIC_TIMEZONE, falling back to the server's zone.
func (c *Config) ClinicLocation() *time.Location {
	name := strings.TrimSpace(c.ClinicTimezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown CLINIC_TIMEZONE %q, using server local time", name)
		return time.Local
	}
	return loc
}
