package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "postgres" or "sqlite"
	DSN    string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type TOTPConfig struct {
	Issuer string `yaml:"issuer"`
}

type AuthConfig struct {
	PendingTTL string `yaml:"pending_ttl"`
	BcryptCost int    `yaml:"bcrypt_cost"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	TOTP     TOTPConfig     `yaml:"totp"`
	Auth     AuthConfig     `yaml:"auth"`
}

type Config struct {
	Port          string
	GinMode       string
	DBDriver      string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	SessionTTL    time.Duration
	TOTPIssuer    string
	PendingTTL    time.Duration
	BcryptCost    int
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides. The JWT
// signing secret must come from the environment or the file, never from a
// compiled-in default.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	pendingTTL, err := time.ParseDuration(configFile.Auth.PendingTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid pending auth TTL: %w", err)
	}

	cfg := &Config{
		Port:          fmt.Sprintf("%d", configFile.App.Port),
		GinMode:       configFile.App.GinMode,
		DBDriver:      env("DB_DRIVER", configFile.Database.Driver),
		DSN:           env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,
		JWTSecret:     env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:     configFile.JWT.Issuer,
		SessionTTL:    sessionTTL,
		TOTPIssuer:    configFile.TOTP.Issuer,
		PendingTTL:    pendingTTL,
		BcryptCost:    configFile.Auth.BcryptCost,
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
