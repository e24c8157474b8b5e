package repository

import (
	"context"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/google/uuid"
)

type MatchRepository interface {
	// CreateBatch сохраняет все матчи сетки в одной транзакции
	CreateBatch(ctx context.Context, matches []*domain.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	List(ctx context.Context) ([]*domain.Match, error)
	Count(ctx context.Context) (int, error)
	ExistsForTeam(ctx context.Context, teamID uuid.UUID) (bool, error)
	// UpdateScores записывает счет только пока матч не завершен
	UpdateScores(ctx context.Context, match *domain.Match) error
	// Complete переводит открытый матч в завершенный
	Complete(ctx context.Context, id uuid.UUID) error
}
