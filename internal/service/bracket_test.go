package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTeams(n int) []*domain.Team {
	teams := make([]*domain.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, domain.NewTeam(fmt.Sprintf("Team %d", i+1), "Go!", 2000))
	}
	return teams
}

func TestPairTeams_TeamCount(t *testing.T) {
	for n := 0; n <= 20; n++ {
		n := n
		t.Run(fmt.Sprintf("%d команд", n), func(t *testing.T) {
			teams := makeTeams(n)
			rng := rand.New(rand.NewSource(int64(n)))

			matches, err := PairTeams(teams, rng.Shuffle)

			valid := n >= 8 && n <= 16 && n%2 == 0
			if !valid {
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Nil(t, matches)
				return
			}

			require.NoError(t, err)
			require.Len(t, matches, n/2)

			seen := make(map[uuid.UUID]int)
			for i, m := range matches {
				assert.Equal(t, i, m.Slot)
				assert.NotEqual(t, m.TeamAID, m.TeamBID)
				assert.Equal(t, domain.DefaultScore, m.ScoreA)
				assert.Equal(t, domain.DefaultScore, m.ScoreB)
				assert.False(t, m.Completed)
				assert.Equal(t, m.TeamAID, m.TeamA.ID)
				assert.Equal(t, m.TeamBID, m.TeamB.ID)
				seen[m.TeamAID]++
				seen[m.TeamBID]++
			}
			assert.Len(t, seen, n)
			for _, team := range teams {
				assert.Equal(t, 1, seen[team.ID], "каждая команда должна играть ровно один матч")
			}
		})
	}
}

func TestPairTeams_DoesNotMutateInput(t *testing.T) {
	teams := makeTeams(8)
	original := make([]*domain.Team, len(teams))
	copy(original, teams)
	rng := rand.New(rand.NewSource(42))

	_, err := PairTeams(teams, rng.Shuffle)

	require.NoError(t, err)
	assert.Equal(t, original, teams)
}

func TestPairTeams_PairsConsecutiveAfterShuffle(t *testing.T) {
	teams := makeTeams(8)
	reverse := func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}

	matches, err := PairTeams(teams, reverse)

	require.NoError(t, err)
	assert.Equal(t, teams[7].ID, matches[0].TeamAID)
	assert.Equal(t, teams[6].ID, matches[0].TeamBID)
	assert.Equal(t, teams[1].ID, matches[3].TeamAID)
	assert.Equal(t, teams[0].ID, matches[3].TeamBID)
}

func TestPairTeams_FirstSlotIsUniform(t *testing.T) {
	teams := makeTeams(8)
	rng := rand.New(rand.NewSource(99))

	counts := make(map[uuid.UUID]int)
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		matches, err := PairTeams(teams, rng.Shuffle)
		require.NoError(t, err)
		counts[matches[0].TeamAID]++
	}

	for _, team := range teams {
		share := float64(counts[team.ID]) / rounds
		assert.InDelta(t, 1.0/8, share, 0.03, team.Name)
	}
}
