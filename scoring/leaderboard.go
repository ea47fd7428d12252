package scoring

import (
	"fmt"
	"sort"

	"github.com/Dosada05/golf-matchplay/models"
)

// BuildStandings folds match results into ranked standings.
//
// Every ID in roster gets a row even without a recorded match. Players that only show up
// in results are added as well, so the per-player sum always equals the sum of their
// PointsAwarded entries. Ordering: total points desc, name asc, player ID asc.
func BuildStandings(roster []int, names map[int]string, results []*models.MatchResult) []models.PlayerStanding {
	index := make(map[int]*models.PlayerStanding, len(roster))
	order := make([]int, 0, len(roster))

	entry := func(playerID int) *models.PlayerStanding {
		if s, ok := index[playerID]; ok {
			return s
		}
		name := names[playerID]
		if name == "" {
			name = fmt.Sprintf("Player %d", playerID)
		}
		s := &models.PlayerStanding{PlayerID: playerID, Name: name}
		index[playerID] = s
		order = append(order, playerID)
		return s
	}

	for _, id := range roster {
		entry(id)
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		p1 := entry(r.Player1ID)
		p2 := entry(r.Player2ID)
		p1.TotalPoints += r.PointsAwarded.Player1
		p2.TotalPoints += r.PointsAwarded.Player2
		p1.MatchesPlayed++
		p2.MatchesPlayed++

		switch {
		case r.WinnerID == nil:
			p1.MatchesTied++
			p2.MatchesTied++
		case *r.WinnerID == r.Player1ID:
			p1.MatchesWon++
			p2.MatchesLost++
		default:
			p2.MatchesWon++
			p1.MatchesLost++
		}
	}

	standings := make([]models.PlayerStanding, 0, len(order))
	for _, id := range order {
		standings = append(standings, *index[id])
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PlayerID < b.PlayerID
	})

	// Competition ranking: equal points share a rank, the next rank skips ("1224").
	for i := range standings {
		if i > 0 && standings[i].TotalPoints == standings[i-1].TotalPoints {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}
