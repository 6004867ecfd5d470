package main

import (
	"context"
	"os"

	"github.com/yigit/registrar/internal/bootstrap"
	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/server"
)

// @title Registrar API
// @version 1.0
// @description Course registration: catalog, sections, enrollment and transcripts

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer(context.Background(), bootstrap.DefaultConfigPath())
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
