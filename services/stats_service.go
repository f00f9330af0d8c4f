package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/voleisexta/roster-system/models"
	"github.com/voleisexta/roster-system/repositories"
)

type StatsService struct {
	repo repositories.ConfirmationRepository
}

func NewStatsService(repo repositories.ConfirmationRepository) *StatsService {
	return &StatsService{repo: repo}
}

// GetStats aggregates attendance over the active non-seed records: a
// per-person ranking, an overall summary and a per-gender breakdown.
func (s *StatsService) GetStats(ctx context.Context) (*models.AttendanceStats, error) {
	var (
		records []*models.Confirmation
		total   int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.repo.ListActive(gCtx, true)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountActive(gCtx, true)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}

	byName := make(map[string]*models.AttendanceRank)
	order := make([]string, 0)
	for _, c := range records {
		key := strings.ToLower(c.Name)
		rank, ok := byName[key]
		if !ok {
			rank = &models.AttendanceRank{
				Name:     c.Name,
				Gender:   c.Gender,
				Category: c.Category,
			}
			byName[key] = rank
			order = append(order, key)
		}
		rank.TotalConfirmations++
		// Records arrive ordered by confirmation time, so the last one
		// seen is the most recent.
		rank.LastConfirmedAt = c.ConfirmedAt
	}

	ranking := make([]models.AttendanceRank, 0, len(order))
	for _, key := range order {
		ranking = append(ranking, *byName[key])
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalConfirmations > ranking[j].TotalConfirmations
	})

	byGender := make(map[models.Gender]models.GenderBreakdown)
	for _, rank := range ranking {
		breakdown := byGender[rank.Gender]
		breakdown.Confirmations += rank.TotalConfirmations
		breakdown.People++
		byGender[rank.Gender] = breakdown
	}

	unique := len(ranking)
	average := 0.0
	if unique > 0 {
		average = math.Round(float64(total)/float64(unique)*100) / 100
	}

	return &models.AttendanceStats{
		Ranking: ranking,
		Summary: models.AttendanceSummary{
			TotalConfirmations: total,
			UniquePeople:       unique,
			AveragePerPerson:   average,
		},
		ByGender: byGender,
	}, nil
}
