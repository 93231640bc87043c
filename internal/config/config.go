package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	CORS     CORSConfig
	Log      LogConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production") || strings.EqualFold(a.Env, "prod")
}

type DatabaseConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	AdminUser     string
	AdminPassword string
	AutoCreate    bool
	MaxConns      int32
	MinConns      int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("APP_NAME"),
			Env:  v.GetString("APP_ENV"),
			Port: v.GetInt("PORT"),
		},
		Database: DatabaseConfig{
			Host:          v.GetString("DB_HOST"),
			Port:          v.GetString("DB_PORT"),
			User:          v.GetString("DB_USERNAME"),
			Password:      v.GetString("DB_PASSWORD"),
			Name:          v.GetString("DB_DATABASE"),
			AdminUser:     v.GetString("DB_ADMIN_USER"),
			AdminPassword: v.GetString("DB_ADMIN_PASSWORD"),
			AutoCreate:    v.GetBool("DB_AUTO_CREATE"),
			MaxConns:      v.GetInt32("DB_MAX_CONNS"),
			MinConns:      v.GetInt32("DB_MIN_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret:       v.GetString("SESSION_SECRET"),
			TTL:          v.GetDuration("SESSION_TTL"),
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "nebulanotes")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 8080)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_AUTO_CREATE", false)
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", "336h")
	v.SetDefault("SESSION_COOKIE_NAME", "sessionid")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("LOG_LEVEL", "info")
}

// Validate reports the first missing setting the server cannot start without.
func (c *Config) Validate() error {
	required := map[string]string{
		"DB_USERNAME": c.Database.User,
		"DB_PASSWORD": c.Database.Password,
		"DB_DATABASE": c.Database.Name,
	}
	for _, key := range []string{"DB_USERNAME", "DB_PASSWORD", "DB_DATABASE"} {
		if required[key] == "" {
			return fmt.Errorf("%s environment variable is required", key)
		}
	}
	if c.Database.AutoCreate && (c.Database.AdminUser == "" || c.Database.AdminPassword == "") {
		return errors.New("DB_ADMIN_USER and DB_ADMIN_PASSWORD are required when DB_AUTO_CREATE is set")
	}
	if c.Session.Secret == "" {
		if c.App.IsProduction() {
			return errors.New("SESSION_SECRET environment variable is required in production")
		}
		c.Session.Secret = "nebulanotes-development-secret"
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
