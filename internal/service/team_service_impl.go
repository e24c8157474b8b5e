package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/bagdasarian/championship/internal/events"
	"github.com/bagdasarian/championship/internal/repository"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type teamService struct {
	teamRepo  repository.TeamRepository
	matchRepo repository.MatchRepository
	publisher events.Publisher
	clock     clockwork.Clock
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	matchRepo repository.MatchRepository,
	publisher events.Publisher,
	clock clockwork.Clock,
) TeamService {
	return &teamService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		publisher: publisher,
		clock:     clock,
	}
}

func teamNotFound(id uuid.UUID) error {
	return domain.NewNotFoundError("team with id " + id.String())
}

// CreateTeam регистрирует команду со значениями по умолчанию
func (s *teamService) CreateTeam(ctx context.Context, in domain.CreateTeamInput) (*domain.Team, error) {
	name, warCry, year, err := validateCreate(in, s.clock.Now().Year())
	if err != nil {
		return nil, err
	}

	existingTeam, err := s.teamRepo.GetByName(ctx, name)
	if err == nil && existingTeam != nil {
		return nil, domain.ErrTeamExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxTeams {
		return nil, domain.ErrTeamLimit
	}

	team := domain.NewTeam(name, warCry, year)
	if err := s.teamRepo.Create(ctx, team, domain.MaxTeams); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, domain.ErrTeamExists
		case errors.Is(err, repository.ErrLimitReached):
			return nil, domain.ErrTeamLimit
		}
		return nil, err
	}

	publish(ctx, s.publisher, events.New(events.TypeTeamCreated, events.TeamPayload{TeamID: team.ID, Name: team.Name}))
	return team, nil
}

// ListTeams возвращает все команды в порядке регистрации
func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}

// GetTeam получает команду по идентификатору
func (s *teamService) GetTeam(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, teamNotFound(id)
		}
		return nil, err
	}
	return team, nil
}

// UpdateTeam применяет частичное обновление и заново проверяет измененные поля
func (s *teamService) UpdateTeam(ctx context.Context, id uuid.UUID, in domain.UpdateTeamInput) (*domain.Team, error) {
	team, err := s.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	var problems validationProblems
	renamed := false
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			problems.add("name must not be empty")
		} else if name != team.Name {
			team.Name = name
			renamed = true
		}
	}
	if in.WarCry != nil {
		warCry := strings.TrimSpace(*in.WarCry)
		if warCry == "" {
			problems.add("warCry must not be empty")
		}
		team.WarCry = warCry
	}
	if in.FoundationYear != nil {
		problems.checkFoundationYear(*in.FoundationYear, s.clock.Now().Year())
		team.FoundationYear = *in.FoundationYear
	}
	if in.Points != nil {
		team.Points = *in.Points
	}
	if err := problems.err(); err != nil {
		return nil, err
	}

	if renamed {
		other, err := s.teamRepo.GetByName(ctx, team.Name)
		if err == nil && other != nil && other.ID != team.ID {
			return nil, domain.ErrTeamExists
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, domain.ErrTeamExists
		case errors.Is(err, repository.ErrNotFound):
			return nil, teamNotFound(id)
		}
		return nil, err
	}

	publish(ctx, s.publisher, events.New(events.TypeTeamUpdated, events.TeamPayload{TeamID: team.ID, Name: team.Name}))
	return team, nil
}

// DeleteTeam удаляет команду, если она не участвует ни в одном матче
func (s *teamService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	team, err := s.GetTeam(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.matchRepo.ExistsForTeam(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrTeamInUse
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrReferenced):
			return domain.ErrTeamInUse
		case errors.Is(err, repository.ErrNotFound):
			return teamNotFound(id)
		}
		return err
	}

	publish(ctx, s.publisher, events.New(events.TypeTeamDeleted, events.TeamPayload{TeamID: team.ID, Name: team.Name}))
	return nil
}
