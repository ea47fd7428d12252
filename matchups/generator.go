package matchups

import (
	"errors"
	"fmt"

	"github.com/Dosada05/golf-matchplay/models"
)

var ErrFoursomeSize = errors.New("a foursome must have exactly 4 distinct players")

// Generator produces the segment schedule of a foursome.
type Generator interface {
	Generate(year int, foursome models.Foursome) ([]models.Matchup, error)

	Name() string
}

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() Generator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) Name() string {
	return "RoundRobin"
}

// Generate uses the circle method: the first player stays fixed and the others rotate,
// which gives one round per segment with two concurrent matches and every pair meeting once.
func (g *RoundRobinGenerator) Generate(year int, foursome models.Foursome) ([]models.Matchup, error) {
	players := foursome.PlayerIDs
	if len(players) != 4 || hasDuplicates(players) {
		return nil, fmt.Errorf("%w (foursome %d has %v)", ErrFoursomeSize, foursome.ID, players)
	}

	segments := models.Segments()
	n := len(players)
	rotation := append([]int(nil), players[1:]...)

	matchups := make([]models.Matchup, 0, n*(n-1)/2)
	for round := 0; round < n-1; round++ {
		lineup := append([]int{players[0]}, rotation...)
		for i := 0; i < n/2; i++ {
			matchups = append(matchups, models.Matchup{
				TournamentYear: year,
				FoursomeID:     foursome.ID,
				Player1ID:      lineup[i],
				Player2ID:      lineup[n-1-i],
				HoleSegment:    segments[round],
			})
		}
		// поворачиваем всех кроме первого
		last := rotation[len(rotation)-1]
		copy(rotation[1:], rotation[:len(rotation)-1])
		rotation[0] = last
	}
	return matchups, nil
}

func hasDuplicates(ids []int) bool {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}
