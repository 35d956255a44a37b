package main

import (
	"github.com/Aayush01055/File-tracking-system/internal/devserver"
	"github.com/Aayush01055/File-tracking-system/internal/infrastructure/config"
	"github.com/Aayush01055/File-tracking-system/pkg/logger"
)

// ftms-devserver runs an in-memory rendition of the remote file-tracking
// service for local development and integration testing. It is seeded with a
// default admin account (admin/admin123) and two officers.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	store := devserver.NewStore()
	store.Seed()

	e := devserver.NewRouter(store, log)
	log.Info().Str("port", cfg.Server.Port).Str("env", cfg.Server.Env).Msg("devserver listening")
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped")
	}
}
