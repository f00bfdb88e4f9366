package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"evalhub/internal/app/server"
	"evalhub/internal/config"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer app.Close()

	log.Info().Str("addr", cfg.Addr).Msg("evaluation console server listening")
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
