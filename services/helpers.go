package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/golf-matchplay/matchups"
	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/repositories"
	"github.com/Dosada05/golf-matchplay/storage"
)

// MatchupTable is the read side of the static matchup schedule.
type MatchupTable interface {
	Year(year int) (*matchups.Tournament, error)
}

// Broadcaster pushes messages to the websocket subscribers of a room.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	PlayerID int
	Role     models.PlayerRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func tournamentFor(table MatchupTable, year int) (*matchups.Tournament, error) {
	t, err := table.Year(year)
	if err != nil {
		if errors.Is(err, matchups.ErrTournamentYearNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrTournamentYearNotFound, year)
		}
		return nil, err
	}
	return t, nil
}

// loadPlayerPair fetches both players of a matchup concurrently.
func loadPlayerPair(ctx context.Context, repo repositories.PlayerRepository, player1ID, player2ID int) (*models.Player, *models.Player, error) {
	var p1, p2 *models.Player
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p1, err = repo.GetByID(gctx, player1ID)
		if err != nil {
			return mapPlayerRepoError(err, player1ID)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		p2, err = repo.GetByID(gctx, player2ID)
		if err != nil {
			return mapPlayerRepoError(err, player2ID)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

func playersByID(players []*models.Player) map[int]*models.Player {
	out := make(map[int]*models.Player, len(players))
	for _, p := range players {
		if p != nil {
			out[p.ID] = p
		}
	}
	return out
}

func playerNames(players map[int]*models.Player) map[int]string {
	names := make(map[int]string, len(players))
	for id, p := range players {
		names[id] = p.Name
	}
	return names
}

func populateScorecardURLFunc(result *models.MatchResult, uploader storage.FileUploader) {
	if result != nil && result.ScorecardKey != nil && *result.ScorecardKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*result.ScorecardKey)
		if url != "" {
			result.ScorecardURL = &url
		}
	}
}

// GetExtensionFromContentType maps an image content type to a file extension.
func GetExtensionFromContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	case "image/heic", "image/heif":
		// фото с iPhone
		return ".heic", nil
	default:
		parts := strings.Split(contentType, "/")
		if len(parts) == 2 && parts[0] == "image" && parts[1] != "" && !strings.Contains(parts[1], "svg") {
			return "." + strings.Split(parts[1], "+")[0], nil
		}
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedImage, contentType)
	}
}
