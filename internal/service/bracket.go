package service

import (
	"github.com/bagdasarian/championship/internal/domain"
)

// ShuffleFunc совпадает с сигнатурой rand.Shuffle
type ShuffleFunc func(n int, swap func(i, j int))

// PairTeams перемешивает копию списка и разбивает его на пары (t[2i], t[2i+1]).
// Допустимо от 8 до 16 команд, количество должно быть четным.
func PairTeams(teams []*domain.Team, shuffle ShuffleFunc) ([]*domain.Match, error) {
	n := len(teams)
	if n < domain.MinTeams || n > domain.MaxTeams || n%2 != 0 {
		return nil, domain.NewValidationError(
			"the championship needs an even number of teams between %d and %d, got %d",
			domain.MinTeams, domain.MaxTeams, n,
		)
	}

	shuffled := make([]*domain.Team, n)
	copy(shuffled, teams)
	shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	matches := make([]*domain.Match, 0, n/2)
	for i := 0; i < n; i += 2 {
		matches = append(matches, domain.NewMatch(i/2, shuffled[i], shuffled[i+1]))
	}

	return matches, nil
}
