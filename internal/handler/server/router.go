package server

import (
	"net/http"

	"github.com/bagdasarian/championship/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /api/teams", h.CreateTeam)
	mux.HandleFunc("GET /api/teams", h.ListTeams)
	mux.HandleFunc("GET /api/teams/{id}", h.GetTeam)
	mux.HandleFunc("PUT /api/teams/{id}", h.UpdateTeam)
	mux.HandleFunc("DELETE /api/teams/{id}", h.DeleteTeam)
	mux.HandleFunc("POST /api/bracket", h.GenerateBracket)
	mux.HandleFunc("GET /api/matches", h.ListMatches)
	mux.HandleFunc("GET /api/matches/{id}", h.GetMatch)
	mux.HandleFunc("POST /api/matches/{id}/actions", h.ApplyMatchAction)
	mux.HandleFunc("POST /api/matches/{id}/close", h.CloseMatch)

	mux.HandleFunc("GET /{$}", h.IndexPage)
	mux.HandleFunc("GET /teams", h.TeamsPage)
	mux.HandleFunc("POST /teams/create", h.CreateTeamForm)
	mux.HandleFunc("POST /teams/{id}/delete", h.DeleteTeamForm)
	mux.HandleFunc("GET /start", h.StartPage)
	mux.HandleFunc("GET /match/{id}", h.MatchPage)
	mux.HandleFunc("POST /match/{id}/update", h.UpdateMatchForm)
	mux.HandleFunc("POST /match/{id}/end", h.EndMatchForm)

	mux.HandleFunc("GET /health", h.Health)
}
