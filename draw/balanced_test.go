package draw

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voleisexta/roster-system/models"
)

func makePlayers(n int, gender models.Gender) []*models.Confirmation {
	players := make([]*models.Confirmation, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, &models.Confirmation{
			ID:       i + 1,
			Name:     fmt.Sprintf("player-%s-%d", gender, i+1),
			Category: models.CategoryMonthlyMember,
			Gender:   gender,
		})
	}
	return players
}

func realNames(teams models.TeamAssignment) map[string]int {
	seen := make(map[string]int)
	for _, team := range teams {
		for _, entry := range team {
			if !entry.Placeholder {
				seen[entry.Name]++
			}
		}
	}
	return seen
}

func countPlaceholders(teams models.TeamAssignment) int {
	count := 0
	for _, team := range teams {
		for _, entry := range team {
			if entry.Placeholder {
				count++
			}
		}
	}
	return count
}

func TestDrawFullRoster(t *testing.T) {
	g := NewBalancedGenerator(rand.New(rand.NewSource(1)))

	players := append(makePlayers(12, models.GenderFemale), makePlayers(12, models.GenderMale)...)
	teams := g.Draw(players)

	require.Len(t, teams, models.NumTeams)
	for i, team := range teams {
		assert.Len(t, team, models.MaxPerTeam, "team %d", i+1)
	}
	assert.Zero(t, countPlaceholders(teams), "a full roster must not be padded")

	seen := realNames(teams)
	assert.Len(t, seen, len(players))
	for _, count := range seen {
		assert.Equal(t, 1, count, "every player appears in exactly one team")
	}
}

func TestDrawPadsUnderfilledRoster(t *testing.T) {
	g := NewBalancedGenerator(rand.New(rand.NewSource(1)))

	players := append(makePlayers(6, models.GenderFemale), makePlayers(4, models.GenderMale)...)
	teams := g.Draw(players)

	require.Len(t, teams, models.NumTeams)
	for i, team := range teams {
		assert.Len(t, team, models.MaxPerTeam, "team %d", i+1)
	}
	assert.Equal(t, models.NumTeams*models.MaxPerTeam-len(players), countPlaceholders(teams))
	assert.Len(t, realNames(teams), len(players))
}

func TestDrawFourPlayersOnePerTeam(t *testing.T) {
	g := NewBalancedGenerator(rand.New(rand.NewSource(7)))

	players := makePlayers(4, models.GenderMale)
	teams := g.Draw(players)

	require.Len(t, teams, models.NumTeams)
	for i, team := range teams {
		require.Len(t, team, models.MaxPerTeam, "team %d", i+1)

		real := 0
		for _, entry := range team {
			if !entry.Placeholder {
				real++
			} else {
				assert.Equal(t, models.OpenSlotName, entry.Name)
			}
		}
		assert.Equal(t, 1, real, "team %d should hold exactly one real player", i+1)
	}
	assert.Len(t, realNames(teams), 4)
}

func TestDrawEmptyInput(t *testing.T) {
	g := NewBalancedGenerator(rand.New(rand.NewSource(1)))

	teams := g.Draw(nil)

	require.Len(t, teams, models.NumTeams)
	for _, team := range teams {
		require.Len(t, team, models.MaxPerTeam)
		for _, entry := range team {
			assert.True(t, entry.Placeholder)
			assert.Equal(t, models.OpenSlotName, entry.Name)
		}
	}
}

func TestDrawTruncatesOversizedInput(t *testing.T) {
	g := NewBalancedGenerator(rand.New(rand.NewSource(1)))

	players := makePlayers(30, models.GenderMale)
	teams := g.Draw(players)

	assert.Zero(t, countPlaceholders(teams))

	seen := realNames(teams)
	assert.Len(t, seen, models.MaxSeats)
	// Only the first MaxSeats confirmations take part in the draw.
	for i := models.MaxSeats; i < len(players); i++ {
		assert.NotContains(t, seen, players[i].Name)
	}
}

func TestDrawDefaultsMissingGenderToMale(t *testing.T) {
	g := NewBalancedGenerator(rand.New(rand.NewSource(1)))

	players := []*models.Confirmation{
		{ID: 1, Name: "untagged-1", Category: models.CategoryDropIn},
		{ID: 2, Name: "untagged-2", Category: models.CategoryDropIn},
		{ID: 3, Name: "tagged", Category: models.CategoryDropIn, Gender: models.GenderFemale},
		{ID: 4, Name: "untagged-3", Category: models.CategoryDropIn},
	}
	teams := g.Draw(players)

	for _, team := range teams {
		for _, entry := range team {
			if entry.Placeholder {
				continue
			}
			if entry.Name == "tagged" {
				assert.Equal(t, models.GenderFemale, entry.Gender)
			} else {
				assert.Equal(t, models.GenderMale, entry.Gender)
			}
		}
	}

	// The stored records keep their empty tag.
	for _, p := range players {
		if p.Name != "tagged" {
			assert.Empty(t, p.Gender)
		}
	}
}

func TestDrawDoesNotMutateInputOrder(t *testing.T) {
	g := NewBalancedGenerator(rand.New(rand.NewSource(3)))

	players := append(makePlayers(5, models.GenderFemale), makePlayers(5, models.GenderMale)...)
	var names []string
	for _, p := range players {
		names = append(names, p.Name)
	}

	g.Draw(players)

	for i, p := range players {
		assert.Equal(t, names[i], p.Name)
	}
}

func TestDrawShuffleFairness(t *testing.T) {
	g := NewBalancedGenerator(rand.New(rand.NewSource(42)))

	players := makePlayers(8, models.GenderMale)
	target := players[0].Name

	const trials = 4000
	counts := make([]int, models.NumTeams)
	for i := 0; i < trials; i++ {
		teams := g.Draw(players)
		for teamIdx, team := range teams {
			for _, entry := range team {
				if entry.Name == target {
					counts[teamIdx]++
				}
			}
		}
	}

	// Every team should receive the player close to trials/NumTeams times.
	expected := float64(trials) / float64(models.NumTeams)
	for teamIdx, count := range counts {
		assert.InDelta(t, expected, float64(count), expected*0.15,
			"team %d assignment frequency should be near uniform", teamIdx+1)
	}
}
