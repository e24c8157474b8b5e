package service

import (
	"context"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/google/uuid"
)

type TeamService interface {
	CreateTeam(ctx context.Context, in domain.CreateTeamInput) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, in domain.UpdateTeamInput) (*domain.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
}
