package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/championship/internal/config"
	"github.com/bagdasarian/championship/internal/db"
	"github.com/bagdasarian/championship/internal/events"
	"github.com/bagdasarian/championship/internal/handler"
	"github.com/bagdasarian/championship/internal/handler/server"
	"github.com/bagdasarian/championship/internal/logging"
	"github.com/bagdasarian/championship/internal/repository/postgres"
	"github.com/bagdasarian/championship/internal/service"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database := db.MustLoad(ctx, cfg)
	cancel()
	log.Info().Msg("connected to database")
	defer database.Close()

	var publisher events.Publisher = events.NopPublisher{}
	var nc *nats.Conn
	if cfg.Events.NATSURL != "" {
		conn, err := events.Connect(cfg.Events.NATSURL)
		if err != nil {
			log.Warn().Err(err).Msg("events disabled")
		} else {
			nc = conn
			publisher = events.NewNATSPublisher(nc, cfg.Events.SubjectPrefix)
			log.Info().Str("url", cfg.Events.NATSURL).Msg("publishing events to nats")
		}
	}

	teamRepo := postgres.NewTeamRepository(database)
	matchRepo := postgres.NewMatchRepository(database)

	teamService := service.NewTeamService(teamRepo, matchRepo, publisher, clockwork.NewRealClock())
	matchService := service.NewMatchService(teamRepo, matchRepo, publisher)

	h := handler.NewHandler(teamService, matchService, database)
	srv := server.NewServer(h, cfg.Server)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if nc != nil {
		if err := nc.Drain(); err != nil {
			log.Warn().Err(err).Msg("nats drain failed")
		}
	}
}
