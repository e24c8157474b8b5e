package repository

import (
	"context"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/google/uuid"
)

type TeamRepository interface {
	// Create отказывает с ErrLimitReached, если команд уже maxTeams
	Create(ctx context.Context, team *domain.Team, maxTeams int) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
}
