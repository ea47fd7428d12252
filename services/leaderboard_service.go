package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/golf-matchplay/metrics"
	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/repositories"
	"github.com/Dosada05/golf-matchplay/scoring"
)

type LeaderboardService interface {
	Compute(ctx context.Context, year int, foursomeID *int) ([]models.PlayerStanding, error)
}

type leaderboardService struct {
	table      MatchupTable
	playerRepo repositories.PlayerRepository
	resultRepo repositories.MatchResultRepository
	logger     *slog.Logger
}

func NewLeaderboardService(table MatchupTable, playerRepo repositories.PlayerRepository, resultRepo repositories.MatchResultRepository, logger *slog.Logger) LeaderboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &leaderboardService{
		table:      table,
		playerRepo: playerRepo,
		resultRepo: resultRepo,
		logger:     logger,
	}
}

// Compute recomputes standings from every stored result; nothing is cached.
func (s *leaderboardService) Compute(ctx context.Context, year int, foursomeID *int) ([]models.PlayerStanding, error) {
	start := time.Now()
	defer func() { metrics.LeaderboardDuration.Observe(time.Since(start).Seconds()) }()

	t, err := tournamentFor(s.table, year)
	if err != nil {
		return nil, err
	}
	if foursomeID != nil && !t.HasFoursome(*foursomeID) {
		return nil, fmt.Errorf("%w: foursome %d in %d", ErrNotFound, *foursomeID, year)
	}
	roster := t.PlayerIDs(foursomeID)

	var (
		players []*models.Player
		results []*models.MatchResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.ListByIDs(gctx, roster)
		if err != nil {
			return fmt.Errorf("failed to load roster for %d: %w", year, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		results, err = s.resultRepo.ListByYear(gctx, year, foursomeID)
		if err != nil {
			return fmt.Errorf("failed to load results for %d: %w", year, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	standings := scoring.BuildStandings(roster, playerNames(playersByID(players)), results)
	s.logger.DebugContext(ctx, "leaderboard computed",
		slog.Int("year", year),
		slog.Int("players", len(standings)),
		slog.Int("results", len(results)))
	return standings, nil
}
