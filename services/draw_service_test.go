package services

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/voleisexta/roster-system/draw"
	"github.com/voleisexta/roster-system/models"
	"github.com/voleisexta/roster-system/repositories"
)

type drawServiceSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *repositories.InMemoryConfirmationRepository
	service *DrawService
}

func TestDrawServiceSuite(t *testing.T) {
	suite.Run(t, new(drawServiceSuite))
}

func (s *drawServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = repositories.NewInMemoryConfirmationRepository()
	s.service = NewDrawService(s.repo, draw.NewBalancedGenerator(rand.New(rand.NewSource(1))))
}

func (s *drawServiceSuite) seed(n int, isTest bool) {
	base := time.Date(2026, 8, 28, 19, 0, 0, 0, time.UTC)
	prefix := "player"
	if isTest {
		prefix = "seed"
	}
	for i := 0; i < n; i++ {
		err := s.repo.Insert(s.ctx, &models.Confirmation{
			Name:        fmt.Sprintf("%s-%d", prefix, i+1),
			Category:    models.CategoryMonthlyMember,
			Gender:      models.GenderMale,
			IsTest:      isTest,
			ConfirmedAt: base.Add(time.Duration(i) * time.Minute),
		})
		s.Require().NoError(err)
	}
}

func (s *drawServiceSuite) TestDrawTeamsRequiresMinimumPlayers() {
	s.seed(MinPlayersForDraw-1, false)

	_, err := s.service.DrawTeams(s.ctx)
	s.ErrorIs(err, ErrNotEnoughPlayers)
}

func (s *drawServiceSuite) TestDrawTeamsIgnoresSeedRecords() {
	s.seed(3, false)
	s.seed(5, true)

	_, err := s.service.DrawTeams(s.ctx)
	s.ErrorIs(err, ErrNotEnoughPlayers, "seed records must not count toward the minimum")
}

func (s *drawServiceSuite) TestDrawTeamsProducesFourFullTeams() {
	s.seed(10, false)

	result, err := s.service.DrawTeams(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(result.Teams, models.NumTeams)
	for _, team := range result.Teams {
		s.Len(team, models.MaxPerTeam)
	}
}

func (s *drawServiceSuite) TestDrawTeamsUsesOnlyConfirmedSegment() {
	// 30 active records: 24 confirmed, 6 waitlisted.
	s.seed(30, false)

	result, err := s.service.DrawTeams(s.ctx)
	s.Require().NoError(err)

	seen := make(map[string]bool)
	for _, team := range result.Teams {
		for _, entry := range team {
			s.False(entry.Placeholder, "a full roster must not be padded")
			seen[entry.Name] = true
		}
	}
	s.Len(seen, models.MaxSeats)
	for i := models.MaxSeats; i < 30; i++ {
		s.NotContains(seen, fmt.Sprintf("player-%d", i+1), "waitlisted players stay out of the draw")
	}
}

func (s *drawServiceSuite) TestDrawTeamsShareText() {
	s.seed(4, false)

	result, err := s.service.DrawTeams(s.ctx)
	s.Require().NoError(err)

	for i := 1; i <= models.NumTeams; i++ {
		s.Contains(result.ShareText, fmt.Sprintf("Team %d", i))
	}
	for i := 1; i <= 4; i++ {
		s.Contains(result.ShareText, fmt.Sprintf("player-%d", i))
	}
	s.Contains(result.ShareText, models.OpenSlotName)
}
