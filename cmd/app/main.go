package main

import (
	"github.com/rs/zerolog/log"

	"hus/config"
	"hus/di"
	"hus/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	server, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	server.Serve()
}
