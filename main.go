package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
)

// server bundles the configuration, the stores, and the token service for
// the handlers.
type server struct {
	cfg        *Config
	users      *userStore
	tasks      *taskStore
	categories *categoryStore
	tokens     *tokenService
}

func newServer(cfg *Config, db *sql.DB) *server {
	return &server{
		cfg:        cfg,
		users:      &userStore{db: db},
		tasks:      &taskStore{db: db},
		categories: &categoryStore{db: db},
		tokens:     newTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)),
	}
}

func main() {
	configPath := pflag.String("config", "", "path to the YAML configuration file")
	listen := pflag.String("listen", "", "listen address, overrides the configuration")
	pflag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := initSchema(db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	e := newEcho(newServer(cfg, db))
	e.Use(middleware.Logger())

	e.Logger.Fatal(e.Start(cfg.Server.Listen))
}
