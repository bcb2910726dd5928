package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr     = ":8080"
	defaultDatabaseURL  = "opsboard.db"
	defaultLogLevel     = "info"
	defaultLogFormat    = "json"
	defaultActorSecret  = "change-me-actor-secret"
	defaultActorTTL     = "720h"
	defaultActor        = "dispatcher"
	defaultAutoSeed     = "false"
	defaultUndoDepth    = "20"
	defaultCORSOrigins  = "http://localhost:3000,http://localhost:5173"
	defaultShutdownWait = "10s"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	LogLevel  string
	LogFormat string

	ActorJWTSecret string
	ActorTokenTTL  time.Duration
	DefaultActor   string

	AutoSeed           bool
	UndoDepth          int
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load reads .env files (if present) and then the process environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel)))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", defaultLogFormat)))
	cfg.ActorJWTSecret = strings.TrimSpace(getEnv("ACTOR_JWT_SECRET", defaultActorSecret))
	cfg.DefaultActor = strings.TrimSpace(getEnv("DEFAULT_ACTOR", defaultActor))
	cfg.AutoSeed = parseBoolEnv("AUTO_SEED", defaultAutoSeed)
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))

	var err error
	cfg.ActorTokenTTL, err = parseDurationEnv("ACTOR_TOKEN_TTL", defaultActorTTL)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdownWait)
	if err != nil {
		return nil, err
	}
	cfg.UndoDepth, err = parseIntEnv("UNDO_DEPTH", defaultUndoDepth)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.ActorTokenTTL <= 0 {
		return fmt.Errorf("ACTOR_TOKEN_TTL must be > 0")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.UndoDepth <= 0 {
		return fmt.Errorf("UNDO_DEPTH must be > 0")
	}
	if cfg.DefaultActor == "" {
		return fmt.Errorf("DEFAULT_ACTOR must not be empty")
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.ActorJWTSecret, defaultActorSecret) {
			return fmt.Errorf("in prod/release ACTOR_JWT_SECRET must be set and not default")
		}
		if strings.EqualFold(cfg.DatabaseURL, "memory") {
			return fmt.Errorf("in prod/release DATABASE_URL must not be memory")
		}
	}
	return nil
}

func (c *Config) IsProd() bool { return isProdLike(c.AppEnv) }

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
