package main

import (
	"log"

	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/bootstrap"
	"github.com/LYN3S-CO-UK/API-Help-To-OpenAPI/internal/configuration"
)

// Default metadata (can be overridden by env variables or -ldflags)
var (
	version  = "dev"
	revision = "unknown"
	builtAt  = "unknown"
)

func main() {
	cfg := configuration.Config
	// Env wins over build-time values; "dev" is only the viper default.
	if cfg.AppVersion == "" || cfg.AppVersion == "dev" {
		cfg.AppVersion = version
	}
	if cfg.AppRevision == "" {
		cfg.AppRevision = revision
	}
	if cfg.AppBuiltAt == "" {
		cfg.AppBuiltAt = builtAt
	}

	app := bootstrap.InitBootstrap()
	if err := app.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
