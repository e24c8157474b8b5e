package handler

import (
	"context"

	"github.com/bagdasarian/championship/internal/service"
)

// Pinger проверяет доступность хранилища для /health
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	teamService  service.TeamService
	matchService service.MatchService
	db           Pinger
}

func NewHandler(
	teamService service.TeamService,
	matchService service.MatchService,
	db Pinger,
) *Handler {
	return &Handler{
		teamService:  teamService,
		matchService: matchService,
		db:           db,
	}
}
