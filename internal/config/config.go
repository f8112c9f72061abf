// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is read first when present; real
// environment variables always win over it.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServerConfig
	DatabaseConfig
	SessionConfig
	UploadConfig
	AdminConfig
	LogConfig
}

type ServerConfig struct {
	Port               string   `envconfig:"PORT" default:"8080"`
	GinMode            string   `envconfig:"GIN_MODE" default:"release" validate:"oneof=debug release test"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	RateLimitPerMinute int      `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60" validate:"gte=1"`
	RateLimitBurst     int      `envconfig:"RATE_LIMIT_BURST" default:"10" validate:"gte=1"`
	LoginPath          string   `envconfig:"LOGIN_PATH" default:"/login"`
}

type DatabaseConfig struct {
	Driver          string        `envconfig:"DB_DRIVER" default:"postgres" validate:"oneof=postgres sqlite"`
	URL             string        `envconfig:"DATABASE_URL" validate:"required"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type SessionConfig struct {
	Secret       string        `envconfig:"SESSION_SECRET" validate:"required,min=32"`
	Issuer       string        `envconfig:"SESSION_ISSUER" default:"tourly"`
	TTL          time.Duration `envconfig:"SESSION_TTL" default:"24h" validate:"gt=0"`
	CookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"tourly_session" validate:"required"`
	CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
}

type UploadConfig struct {
	CloudinaryURL string `envconfig:"CLOUDINARY_URL"`
	Folder        string `envconfig:"UPLOAD_FOLDER" default:"tourly"`
	MaxFileBytes  int64  `envconfig:"UPLOAD_MAX_FILE_BYTES" default:"10485760" validate:"gt=0"`
}

type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL" validate:"omitempty,email"`
	Password string `envconfig:"ADMIN_PASSWORD" validate:"required_with=Email"`
	Name     string `envconfig:"ADMIN_NAME" default:"Administrator"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
	File   string `envconfig:"LOG_FILE"`
}

// Load reads .env (if any) and the process environment into a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv is Load without the .env step.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
