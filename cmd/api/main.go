package main

import (
	"os"

	"github.com/ozanc/mentorhub/internal/pkg/logger"
	"github.com/ozanc/mentorhub/internal/server"
)

// @title MentorHub API
// @version 1.0
// @description API for the MentorHub academic project tracking platform

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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
