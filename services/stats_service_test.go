package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voleisexta/roster-system/models"
	"github.com/voleisexta/roster-system/repositories"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryConfirmationRepository()
	service := NewStatsService(repo)

	base := time.Date(2026, 8, 28, 19, 0, 0, 0, time.UTC)
	records := []*models.Confirmation{
		{Name: "Ana", Category: models.CategoryMonthlyMember, Gender: models.GenderFemale},
		{Name: "Bruno", Category: models.CategoryDropIn, Gender: models.GenderMale},
		{Name: "Carla", Category: models.CategoryMonthlyMember, Gender: models.GenderFemale},
		{Name: "seed-1", Category: models.CategoryDropIn, Gender: models.GenderMale, IsTest: true},
	}
	for i, c := range records {
		c.ConfirmedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Insert(ctx, c))
	}

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Summary.TotalConfirmations, "seed records stay out of the stats")
	assert.Equal(t, 3, stats.Summary.UniquePeople)
	assert.Equal(t, 1.0, stats.Summary.AveragePerPerson)

	require.Len(t, stats.Ranking, 3)
	names := make(map[string]models.AttendanceRank)
	for _, rank := range stats.Ranking {
		names[rank.Name] = rank
		assert.Equal(t, 1, rank.TotalConfirmations)
	}
	assert.Contains(t, names, "Ana")
	assert.Contains(t, names, "Bruno")
	assert.Contains(t, names, "Carla")
	assert.NotContains(t, names, "seed-1")
	assert.Equal(t, base, names["Ana"].LastConfirmedAt)

	assert.Equal(t, models.GenderBreakdown{People: 2, Confirmations: 2}, stats.ByGender[models.GenderFemale])
	assert.Equal(t, models.GenderBreakdown{People: 1, Confirmations: 1}, stats.ByGender[models.GenderMale])
}

func TestGetStatsEmptyRoster(t *testing.T) {
	ctx := context.Background()
	service := NewStatsService(repositories.NewInMemoryConfirmationRepository())

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)

	assert.Empty(t, stats.Ranking)
	assert.Zero(t, stats.Summary.TotalConfirmations)
	assert.Zero(t, stats.Summary.UniquePeople)
	assert.Zero(t, stats.Summary.AveragePerPerson)
}
