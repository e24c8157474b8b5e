package service

import (
	"context"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/google/uuid"
)

type MatchService interface {
	GenerateBracket(ctx context.Context) ([]*domain.Match, error)
	ListMatches(ctx context.Context) ([]*domain.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	ApplyMatchAction(ctx context.Context, id uuid.UUID, action string) (*domain.Match, error)
	CloseMatch(ctx context.Context, id uuid.UUID) (*domain.Match, error)
}
