package main

import (
	"context"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/battleship-backend/internal/boards"
	"github.com/robalobadob/battleship-backend/internal/game"
	"github.com/robalobadob/battleship-backend/internal/httpserver"
	"github.com/robalobadob/battleship-backend/internal/service"
	"github.com/robalobadob/battleship-backend/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := boards.Init(os.Getenv("BOARDS_FILE")); err != nil {
		log.Fatal().Err(err).Msg("failed to load reference boards")
	}

	gen, err := game.NewGenerator(game.Config{
		Size:        getEnvInt("BOARD_SIZE", game.DefaultSize),
		MaxAttempts: getEnvInt("PLACEMENT_MAX_ATTEMPTS", game.DefaultMaxAttempts),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid board configuration")
	}
	svc, err := service.NewInitialized(context.Background(), gen, store.NewMemoryStore())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate initial board")
	}

	srv := httpserver.New(svc, httpserver.Options{ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:3000")})
	port := getEnv("PORT", "5000")
	log.Info().Str("port", port).Int("boards", boards.Count()).Msg("starting battleship server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		return def
	}
	return n
}
