package handler

import (
	"time"

	"github.com/bagdasarian/championship/internal/domain"
)

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	resp := TeamResponse{
		ID:             team.ID.String(),
		Name:           team.Name,
		WarCry:         team.WarCry,
		FoundationYear: team.FoundationYear,
		Points:         team.Points,
		Blots:          team.Blots,
		Plifs:          team.Plifs,
		Advrunghs:      team.Advrunghs,
		CreatedAt:      formatTime(team.CreatedAt),
	}
	if team.UpdatedAt != nil {
		resp.UpdatedAt = formatTime(*team.UpdatedAt)
	}
	return resp
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func httpCreateTeamToDomain(req CreateTeamRequest) domain.CreateTeamInput {
	return domain.CreateTeamInput{
		Name:           req.Name,
		WarCry:         req.WarCry,
		FoundationYear: req.FoundationYear,
	}
}

func httpUpdateTeamToDomain(req UpdateTeamRequest) domain.UpdateTeamInput {
	return domain.UpdateTeamInput{
		Name:           req.Name,
		WarCry:         req.WarCry,
		FoundationYear: req.FoundationYear,
		Points:         req.Points,
	}
}

func domainMatchToHTTP(match *domain.Match) MatchResponse {
	resp := MatchResponse{
		ID:        match.ID.String(),
		Slot:      match.Slot,
		ScoreA:    match.ScoreA,
		ScoreB:    match.ScoreB,
		Completed: match.Completed,
		CreatedAt: formatTime(match.CreatedAt),
	}
	if match.TeamA != nil {
		teamA := domainTeamToHTTP(match.TeamA)
		resp.TeamA = &teamA
	}
	if match.TeamB != nil {
		teamB := domainTeamToHTTP(match.TeamB)
		resp.TeamB = &teamB
	}
	return resp
}

func domainMatchesToHTTP(matches []*domain.Match) []MatchResponse {
	result := make([]MatchResponse, 0, len(matches))
	for _, match := range matches {
		result = append(result, domainMatchToHTTP(match))
	}
	return result
}
