package main

import (
	"log/slog"
	"os"

	"backend/config"
	"backend/logging"
	"backend/routes"

	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()
	logging.Setup()
	if envErr != nil {
		slog.Warn(".env file not found, relying on process environment")
	}

	cfg := config.Load()

	db, err := config.InitDB(cfg.DB)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established and migrations completed")

	r := routes.SetupRouter(cfg, db)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
