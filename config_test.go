package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "auth:\n  jwt_secret: s3cret\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Listen != ":8080" {
		t.Errorf("listen: got %q, want :8080", cfg.Server.Listen)
	}
	if cfg.Auth.TokenTTL != duration(24*time.Hour) {
		t.Errorf("token ttl: got %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("max open conns: got %d, want 10", cfg.Database.MaxOpenConns)
	}
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen: ":9000"
  debug: true
database:
  host: db.internal
  name: tasks
auth:
  jwt_secret: s3cret
  token_ttl: 1h
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Listen != ":9000" || !cfg.Server.Debug {
		t.Errorf("server config not applied: %+v", cfg.Server)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Name != "tasks" {
		t.Errorf("database config not applied: %+v", cfg.Database)
	}
	if cfg.Auth.TokenTTL != duration(time.Hour) {
		t.Errorf("token ttl: got %v, want 1h", cfg.Auth.TokenTTL)
	}
	// Unset fields keep their defaults.
	if cfg.Database.Port != 3306 {
		t.Errorf("port: got %d, want 3306", cfg.Database.Port)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv(envJWTSecret, "env-secret")
	t.Setenv(envDBPassword, "env-password")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("jwt secret: got %q, want env-secret", cfg.Auth.JWTSecret)
	}
	if cfg.Database.Password != "env-password" {
		t.Errorf("db password: got %q, want env-password", cfg.Database.Password)
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv(envJWTSecret, "")
	if _, err := LoadConfig(""); err == nil {
		t.Error("LoadConfig accepted a configuration without a JWT secret")
	}
}
