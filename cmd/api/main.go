package main

import (
	"context"
	"os"

	"github.com/coursehub/backend/internal/pkg/logger"
	"github.com/coursehub/backend/internal/server"
)

// @title CourseHub API
// @version 1.0
// @description Course administration and public course catalog

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Setup errors are logged in detail by the bootstrap functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
