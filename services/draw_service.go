package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/voleisexta/roster-system/draw"
	"github.com/voleisexta/roster-system/models"
	"github.com/voleisexta/roster-system/repositories"
)

// MinPlayersForDraw is the practical minimum for a meaningful draw.
const MinPlayersForDraw = 4

type DrawResult struct {
	Teams     models.TeamAssignment `json:"teams"`
	ShareText string                `json:"share_text"`
}

// DrawService produces team assignments from the confirmed segment of the
// roster. Results are ephemeral; nothing is persisted.
type DrawService struct {
	repo   repositories.ConfirmationRepository
	drawer draw.TeamDrawer
}

func NewDrawService(repo repositories.ConfirmationRepository, drawer draw.TeamDrawer) *DrawService {
	return &DrawService{
		repo:   repo,
		drawer: drawer,
	}
}

func (s *DrawService) DrawTeams(ctx context.Context) (*DrawResult, error) {
	records, err := s.repo.ListActive(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for draw: %w", err)
	}

	roster := SplitRoster(records)
	if len(roster.Confirmed) < MinPlayersForDraw {
		return nil, ErrNotEnoughPlayers
	}

	teams := s.drawer.Draw(roster.Confirmed)

	return &DrawResult{
		Teams:     teams,
		ShareText: buildShareText(teams),
	}, nil
}

// buildShareText renders the draw as a message ready for WhatsApp.
func buildShareText(teams models.TeamAssignment) string {
	var b strings.Builder
	b.WriteString("🏐 TEAM DRAW - FRIDAY FOOTVOLLEY 🏐\n")
	for i, team := range teams {
		fmt.Fprintf(&b, "\nTeam %d\n", i+1)
		for _, entry := range team {
			if entry.Placeholder {
				fmt.Fprintf(&b, "• %s\n", entry.Name)
				continue
			}
			fmt.Fprintf(&b, "• %s (%s)\n", entry.Name, entry.Gender)
		}
	}
	return b.String()
}
