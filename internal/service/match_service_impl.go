package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/bagdasarian/championship/internal/events"
	"github.com/bagdasarian/championship/internal/repository"
	"github.com/google/uuid"
)

type matchService struct {
	teamRepo  repository.TeamRepository
	matchRepo repository.MatchRepository
	publisher events.Publisher
	shuffle   ShuffleFunc
}

// NewMatchService создает новый экземпляр MatchService
func NewMatchService(
	teamRepo repository.TeamRepository,
	matchRepo repository.MatchRepository,
	publisher events.Publisher,
) MatchService {
	return &matchService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		publisher: publisher,
		shuffle:   rand.Shuffle,
	}
}

func matchNotFound(id uuid.UUID) error {
	return domain.NewNotFoundError("match with id " + id.String())
}

func (s *matchService) mapRepoError(id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return matchNotFound(id)
	case errors.Is(err, repository.ErrMatchCompleted):
		return domain.ErrMatchCompleted
	}
	return err
}

// GenerateBracket формирует пары из всех команд. Повторный вызов при существующей сетке запрещен.
func (s *matchService) GenerateBracket(ctx context.Context) ([]*domain.Match, error) {
	existing, err := s.matchRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, domain.ErrBracketExists
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matches, err := PairTeams(teams, s.shuffle)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.CreateBatch(ctx, matches); err != nil {
		// уникальный индекс по slot: параллельный запрос уже сохранил сетку
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrBracketExists
		}
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	publish(ctx, s.publisher, events.New(events.TypeBracketGenerated, events.BracketPayload{MatchIDs: ids}))

	return matches, nil
}

// ListMatches возвращает матчи сетки в порядке пар
func (s *matchService) ListMatches(ctx context.Context) ([]*domain.Match, error) {
	return s.matchRepo.List(ctx)
}

// GetMatch получает матч вместе с командами
func (s *matchService) GetMatch(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(id, err)
	}
	return match, nil
}

// ApplyMatchAction применяет код действия к открытому матчу и сохраняет счет
func (s *matchService) ApplyMatchAction(ctx context.Context, id uuid.UUID, action string) (*domain.Match, error) {
	match, err := s.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ApplyAction(match, domain.Action(action)); err != nil {
		return nil, err
	}

	if err := s.matchRepo.UpdateScores(ctx, match); err != nil {
		return nil, s.mapRepoError(id, err)
	}

	publish(ctx, s.publisher, events.New(events.TypeMatchScored, matchPayload(match, action)))
	return match, nil
}

// CloseMatch завершает матч, после чего счет изменить нельзя
func (s *matchService) CloseMatch(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	match, err := s.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := Close(match); err != nil {
		return nil, err
	}

	if err := s.matchRepo.Complete(ctx, id); err != nil {
		return nil, s.mapRepoError(id, err)
	}

	publish(ctx, s.publisher, events.New(events.TypeMatchClosed, matchPayload(match, "")))
	return match, nil
}

func matchPayload(m *domain.Match, action string) events.MatchPayload {
	return events.MatchPayload{
		MatchID:   m.ID,
		Action:    action,
		ScoreA:    m.ScoreA,
		ScoreB:    m.ScoreB,
		Completed: m.Completed,
	}
}
