package main

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file, so secrets can
// stay out of it.
const (
	envDBPassword = "TASKAPP_DB_PASSWORD"
	envJWTSecret  = "TASKAPP_JWT_SECRET"
)

// duration accepts human-readable YAML values like "45m" or "24h", which
// yaml.v3 cannot decode into time.Duration directly.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
	// Debug controls whether internal error responses carry the underlying
	// error text. Keep off in production.
	Debug bool `yaml:"debug"`
}

type DatabaseConfig struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	User            string   `yaml:"user"`
	Password        string   `yaml:"password"`
	Name            string   `yaml:"name"`
	MaxOpenConns    int      `yaml:"max_open_conns"`
	MaxIdleConns    int      `yaml:"max_idle_conns"`
	ConnMaxLifetime duration `yaml:"conn_max_lifetime"`
}

type AuthConfig struct {
	// JWTSecret signs session tokens. Rotating it invalidates every
	// outstanding token.
	JWTSecret string   `yaml:"jwt_secret"`
	TokenTTL  duration `yaml:"token_ttl"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            3306,
			User:            "root",
			Name:            "taskapp",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: duration(5 * time.Minute),
		},
		Auth: AuthConfig{
			TokenTTL: duration(24 * time.Hour),
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// uses the defaults alone. Secret values may come from the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(envDBPassword); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv(envJWTSecret); v != "" {
		cfg.Auth.JWTSecret = v
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret is required (or set " + envJWTSecret + ")")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, errors.New("auth.token_ttl must be positive")
	}

	return cfg, nil
}
