package main

import (
	"os"

	"github.com/buraks/classtrack/internal/pkg/logger"
	"github.com/buraks/classtrack/internal/server"
)

// @title ClassTrack API
// @version 1.0
// @description Transactional registry for students, courses and teacher rosters

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
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
