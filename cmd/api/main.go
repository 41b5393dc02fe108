package main

import (
	"os"

	"github.com/joho/godotenv"

	"registrar/internal/pkg/logger"
	"registrar/internal/server"
)

func main() {
	// Store credentials arrive through the environment; a local .env file
	// is honored when present.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
