package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Dosada05/golf-matchplay/models"
)

// StrokePolicy controls how a handicap gap turns into strokes for a segment.
// One stroke is given per Divisor full strokes of gap, never more than Cap.
type StrokePolicy struct {
	Divisor int
	Cap     int
}

var DefaultStrokePolicy = StrokePolicy{Divisor: 3, Cap: models.HolesPerSegment}

var ErrInvalidStrokePolicy = errors.New("invalid stroke policy")

func (p StrokePolicy) Validate() error {
	if p.Divisor <= 0 {
		return fmt.Errorf("%w: divisor must be positive, got %d", ErrInvalidStrokePolicy, p.Divisor)
	}
	if p.Cap < 0 || p.Cap > models.HolesPerSegment {
		return fmt.Errorf("%w: cap must be between 0 and %d, got %d", ErrInvalidStrokePolicy, models.HolesPerSegment, p.Cap)
	}
	return nil
}

// StrokesForGap returns min(floor(|gap| / Divisor), Cap).
func (p StrokePolicy) StrokesForGap(gap int) int {
	if gap < 0 {
		gap = -gap
	}
	if p.Divisor <= 0 {
		return 0
	}
	strokes := gap / p.Divisor
	if strokes > p.Cap {
		strokes = p.Cap
	}
	return strokes
}

// AllocateStrokes decides who receives strokes in a segment match and on which holes.
// segmentHoles must be the holes of the segment with their stroke index; strokes land on the
// hardest holes first (lowest stroke index, then lowest hole number).
func AllocateStrokes(player1ID, handicap1, player2ID, handicap2 int, segmentHoles []models.HoleInfo, policy StrokePolicy) models.StrokeAllocation {
	alloc := models.StrokeAllocation{StrokeHoles: []int{}}
	if handicap1 == handicap2 {
		return alloc
	}

	strokes := policy.StrokesForGap(handicap1 - handicap2)
	if strokes > len(segmentHoles) {
		strokes = len(segmentHoles)
	}
	if strokes == 0 {
		return alloc
	}

	recipient := player1ID
	if handicap2 > handicap1 {
		recipient = player2ID
	}

	ordered := make([]models.HoleInfo, len(segmentHoles))
	copy(ordered, segmentHoles)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].StrokeIndex != ordered[j].StrokeIndex {
			return ordered[i].StrokeIndex < ordered[j].StrokeIndex
		}
		return ordered[i].Number < ordered[j].Number
	})

	alloc.StrokesGiven = strokes
	alloc.StrokeRecipientID = &recipient
	for _, hole := range ordered[:strokes] {
		alloc.StrokeHoles = append(alloc.StrokeHoles, hole.Number)
	}
	return alloc
}

// DescribeAllocation renders the allocation the way the score entry screen shows it,
// e.g. "Jack receives 3 strokes on holes 2, 5, 4".
func DescribeAllocation(alloc models.StrokeAllocation, names map[int]string) string {
	if alloc.StrokesGiven == 0 || alloc.StrokeRecipientID == nil {
		return "No strokes given"
	}
	name, ok := names[*alloc.StrokeRecipientID]
	if !ok || name == "" {
		name = fmt.Sprintf("Player %d", *alloc.StrokeRecipientID)
	}

	holes := make([]string, len(alloc.StrokeHoles))
	for i, h := range alloc.StrokeHoles {
		holes[i] = strconv.Itoa(h)
	}

	noun := "strokes"
	if alloc.StrokesGiven == 1 {
		noun = "stroke"
	}
	label := "holes"
	if len(holes) == 1 {
		label = "hole"
	}
	return fmt.Sprintf("%s receives %d %s on %s %s", name, alloc.StrokesGiven, noun, label, strings.Join(holes, ", "))
}
