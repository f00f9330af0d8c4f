package draw

import (
	"math/rand"

	"github.com/voleisexta/roster-system/models"
)

// BalancedGenerator splits players into models.NumTeams teams of at most
// models.MaxPerTeam, approximating an even gender mix per team by
// interleaving independently shuffled female and male pools before a
// round-robin distribution.
type BalancedGenerator struct {
	rng *rand.Rand
}

// NewBalancedGenerator returns a generator backed by rng. A nil rng selects
// the shared math/rand source, which is safe for concurrent draws.
func NewBalancedGenerator(rng *rand.Rand) *BalancedGenerator {
	return &BalancedGenerator{rng: rng}
}

func (g *BalancedGenerator) GetName() string {
	return "Balanced"
}

func (g *BalancedGenerator) Draw(confirmed []*models.Confirmation) models.TeamAssignment {
	total := len(confirmed)

	players := confirmed
	if len(players) > models.MaxSeats {
		players = players[:models.MaxSeats]
	}

	// A missing gender tag counts as male for this computation only; the
	// stored record keeps its empty tag.
	var females, males []models.TeamEntry
	for _, c := range players {
		entry := models.TeamEntry{Name: c.Name, Category: c.Category, Gender: c.Gender}
		if entry.Gender == "" {
			entry.Gender = models.GenderMale
		}
		if entry.Gender == models.GenderFemale {
			females = append(females, entry)
		} else {
			males = append(males, entry)
		}
	}

	g.shuffle(females)
	g.shuffle(males)

	// Alternate female/male, draining whichever pool runs longer.
	combined := make([]models.TeamEntry, 0, len(players))
	for fi, mi := 0, 0; fi < len(females) || mi < len(males); {
		if fi < len(females) {
			combined = append(combined, females[fi])
			fi++
		}
		if mi < len(males) {
			combined = append(combined, males[mi])
			mi++
		}
	}

	teams := make(models.TeamAssignment, models.NumTeams)
	for i := range teams {
		teams[i] = make(models.Team, 0, models.MaxPerTeam)
	}

	// Round-robin with skip-when-full: a team at MaxPerTeam passes its turn
	// to the next team in cyclic order. combined never exceeds
	// NumTeams*MaxPerTeam, so an eligible team always exists.
	idx := 0
	for _, entry := range combined {
		for len(teams[idx]) >= models.MaxPerTeam {
			idx = (idx + 1) % models.NumTeams
		}
		teams[idx] = append(teams[idx], entry)
		idx = (idx + 1) % models.NumTeams
	}

	// Open slots are offered only while the real confirmed count is below
	// the cap. A full roster keeps uneven teams as they fell.
	if total < models.MaxSeats {
		for i := range teams {
			for len(teams[i]) < models.MaxPerTeam {
				teams[i] = append(teams[i], models.TeamEntry{Name: models.OpenSlotName, Placeholder: true})
			}
		}
	}

	return teams
}

// shuffle performs an in-place Fisher-Yates shuffle.
func (g *BalancedGenerator) shuffle(entries []models.TeamEntry) {
	for i := len(entries) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		entries[i], entries[j] = entries[j], entries[i]
	}
}

func (g *BalancedGenerator) intn(n int) int {
	if g.rng != nil {
		return g.rng.Intn(n)
	}
	return rand.Intn(n)
}
