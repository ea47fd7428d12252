package scoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/golf-matchplay/models"
)

// PointScale — сколько очков даётся за победу, ничью и поражение в матче на отрезке.
type PointScale struct {
	Name string `json:"name"`
	Win  int    `json:"win"`
	Tie  int    `json:"tie"`
	Loss int    `json:"loss"`
}

var (
	// RulesPointScale is the scale published on the rules page.
	RulesPointScale = PointScale{Name: "rules", Win: 2, Tie: 1, Loss: 0}
	// DisplayPointScale is the scale the old leaderboard display used.
	DisplayPointScale = PointScale{Name: "display", Win: 6, Tie: 3, Loss: 0}
)

var ErrInvalidPointScale = errors.New("invalid point scale")

// PointScaleByName resolves one of the named presets.
func PointScaleByName(name string) (PointScale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RulesPointScale.Name:
		return RulesPointScale, nil
	case DisplayPointScale.Name:
		return DisplayPointScale, nil
	}
	return PointScale{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidPointScale, name)
}

// Validate checks that every decided match hands out the same total as a halved one,
// so a leaderboard never mixes totals.
func (s PointScale) Validate() error {
	if s.Loss < 0 || s.Tie < s.Loss || s.Win < s.Tie {
		return fmt.Errorf("%w: need win >= tie >= loss >= 0, got %d/%d/%d", ErrInvalidPointScale, s.Win, s.Tie, s.Loss)
	}
	if s.Win+s.Loss != 2*s.Tie {
		return fmt.Errorf("%w: win+loss (%d) must equal twice the tie value (%d)", ErrInvalidPointScale, s.Win+s.Loss, 2*s.Tie)
	}
	return nil
}

// MatchTotal is the number of points handed out by any completed match.
func (s PointScale) MatchTotal() int {
	return 2 * s.Tie
}

// Outcome is the decided result of one segment match.
type Outcome struct {
	Player1Net    int
	Player2Net    int
	WinnerID      *int
	PointsAwarded models.PointsAwarded
}

// DecideMatch applies the stroke allocation to segment gross totals and awards points.
// Strokes are subtracted from the recipient's segment total; which holes they fall on
// does not change the arithmetic.
func DecideMatch(player1ID, gross1, player2ID, gross2 int, alloc models.StrokeAllocation, scale PointScale) Outcome {
	out := Outcome{
		Player1Net: gross1 - alloc.StrokesFor(player1ID),
		Player2Net: gross2 - alloc.StrokesFor(player2ID),
	}

	switch {
	case out.Player1Net < out.Player2Net:
		winner := player1ID
		out.WinnerID = &winner
		out.PointsAwarded = models.PointsAwarded{Player1: scale.Win, Player2: scale.Loss}
	case out.Player2Net < out.Player1Net:
		winner := player2ID
		out.WinnerID = &winner
		out.PointsAwarded = models.PointsAwarded{Player1: scale.Loss, Player2: scale.Win}
	default:
		out.PointsAwarded = models.PointsAwarded{Player1: scale.Tie, Player2: scale.Tie}
	}
	return out
}
