package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/golf-matchplay/matchups"
	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/repositories"
	"github.com/Dosada05/golf-matchplay/scoring"
)

type MatchupService interface {
	ListMatchups(ctx context.Context, year int, foursomeID *int) ([]MatchupView, error)
	Allocate(ctx context.Context, year, player1ID, player2ID int, segment string) (*AllocationView, error)
}

// MatchupView is a scheduled matchup with strokes computed from current handicaps.
type MatchupView struct {
	models.Matchup
	Player1Name     string                  `json:"player1_name"`
	Player2Name     string                  `json:"player2_name"`
	Player1Handicap int                     `json:"player1_handicap"`
	Player2Handicap int                     `json:"player2_handicap"`
	Allocation      models.StrokeAllocation `json:"allocation"`
}

// AllocationView answers "who gets strokes, and where" for one scheduled pair.
type AllocationView struct {
	TournamentYear  int                     `json:"tournament_year"`
	FoursomeID      int                     `json:"foursome_id"`
	Player1ID       int                     `json:"player1_id"`
	Player2ID       int                     `json:"player2_id"`
	Player1Handicap int                     `json:"player1_handicap"`
	Player2Handicap int                     `json:"player2_handicap"`
	HoleSegment     models.HoleSegment      `json:"hole_segment"`
	Holes           []models.HoleInfo       `json:"holes"`
	Allocation      models.StrokeAllocation `json:"allocation"`
	Description     string                  `json:"description"`
}

type matchupService struct {
	table      MatchupTable
	playerRepo repositories.PlayerRepository
	policy     scoring.StrokePolicy
	logger     *slog.Logger
}

func NewMatchupService(table MatchupTable, playerRepo repositories.PlayerRepository, policy scoring.StrokePolicy, logger *slog.Logger) MatchupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &matchupService{
		table:      table,
		playerRepo: playerRepo,
		policy:     policy,
		logger:     logger,
	}
}

func (s *matchupService) ListMatchups(ctx context.Context, year int, foursomeID *int) ([]MatchupView, error) {
	t, err := tournamentFor(s.table, year)
	if err != nil {
		return nil, err
	}
	if foursomeID != nil && !t.HasFoursome(*foursomeID) {
		return nil, fmt.Errorf("%w: foursome %d in %d", ErrNotFound, *foursomeID, year)
	}

	scheduled := t.MatchupsFor(foursomeID)
	players, err := s.playerRepo.ListByIDs(ctx, t.PlayerIDs(foursomeID))
	if err != nil {
		return nil, fmt.Errorf("failed to load players for %d: %w", year, err)
	}
	byID := playersByID(players)
	names := playerNames(byID)

	views := make([]MatchupView, 0, len(scheduled))
	for _, m := range scheduled {
		p1, ok1 := byID[m.Player1ID]
		p2, ok2 := byID[m.Player2ID]
		if !ok1 || !ok2 {
			missing := m.Player1ID
			if ok1 {
				missing = m.Player2ID
			}
			return nil, fmt.Errorf("%w: %d is scheduled in %d but not registered", ErrPlayerNotFound, missing, year)
		}

		alloc := scoring.AllocateStrokes(p1.ID, p1.Handicap, p2.ID, p2.Handicap, t.SegmentHoles(m.HoleSegment), s.policy)
		m.StrokeDescription = scoring.DescribeAllocation(alloc, names)
		views = append(views, MatchupView{
			Matchup:         m,
			Player1Name:     p1.Name,
			Player2Name:     p2.Name,
			Player1Handicap: p1.Handicap,
			Player2Handicap: p2.Handicap,
			Allocation:      alloc,
		})
	}
	return views, nil
}

// Allocate computes strokes for a scheduled pair. segment may be empty, in which case the
// segment the pair is scheduled on is used.
func (s *matchupService) Allocate(ctx context.Context, year, player1ID, player2ID int, segment string) (*AllocationView, error) {
	v := newValidationError()
	if player1ID <= 0 {
		v.Add("player1", "player1 is required")
	}
	if player2ID <= 0 {
		v.Add("player2", "player2 is required")
	}
	if player1ID == player2ID && player1ID > 0 {
		v.Add("player2", "a player cannot play against themselves")
	}
	var seg models.HoleSegment
	if segment != "" {
		parsed, err := models.ParseHoleSegment(segment)
		if err != nil {
			v.Add("segment", err.Error())
		}
		seg = parsed
	}
	if err := v.orNil(); err != nil {
		return nil, err
	}

	t, err := tournamentFor(s.table, year)
	if err != nil {
		return nil, err
	}

	m, _, err := t.FindByPlayers(player1ID, player2ID)
	if err != nil {
		if errors.Is(err, matchups.ErrMatchupNotFound) {
			v.Add("matchup", fmt.Sprintf("players %d and %d are not scheduled to play in %d", player1ID, player2ID, year))
			return nil, v
		}
		return nil, err
	}
	if seg != "" && seg != m.HoleSegment {
		v.Add("segment", fmt.Sprintf("players %d and %d play holes %s, not %s", player1ID, player2ID, m.HoleSegment, seg))
		return nil, v
	}

	p1, p2, err := loadPlayerPair(ctx, s.playerRepo, m.Player1ID, m.Player2ID)
	if err != nil {
		return nil, err
	}

	holes := t.SegmentHoles(m.HoleSegment)
	alloc := scoring.AllocateStrokes(p1.ID, p1.Handicap, p2.ID, p2.Handicap, holes, s.policy)
	return &AllocationView{
		TournamentYear:  year,
		FoursomeID:      m.FoursomeID,
		Player1ID:       p1.ID,
		Player2ID:       p2.ID,
		Player1Handicap: p1.Handicap,
		Player2Handicap: p2.Handicap,
		HoleSegment:     m.HoleSegment,
		Holes:           holes,
		Allocation:      alloc,
		Description:     scoring.DescribeAllocation(alloc, map[int]string{p1.ID: p1.Name, p2.ID: p2.Name}),
	}, nil
}
