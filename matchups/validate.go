package matchups

import (
	"fmt"
	"strings"

	"github.com/Dosada05/golf-matchplay/models"
)

const courseHoles = 18

// TableError collects every problem found in one tournament year so they can be fixed
// in a single pass over the file.
type TableError struct {
	Year     int
	Problems []string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("matchup table for %d is invalid: %s", e.Year, strings.Join(e.Problems, "; "))
}

type pairKey struct{ a, b int }

func newPairKey(p1, p2 int) pairKey {
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	return pairKey{p1, p2}
}

// Validate checks that a year is playable: the course defines 18 holes with a full set
// of stroke indexes, and every foursome plays a complete round-robin with each pair
// meeting exactly once and nobody scheduled twice on the same segment.
func Validate(t *Tournament) error {
	verr := &TableError{Year: t.Year}
	addf := func(format string, args ...interface{}) {
		verr.Problems = append(verr.Problems, fmt.Sprintf(format, args...))
	}

	validateCourse(t.Course, addf)

	foursomeOf := make(map[int]int)
	members := make(map[int]map[int]bool)
	for _, f := range t.Foursomes {
		if _, dup := members[f.ID]; dup {
			addf("foursome %d is defined more than once", f.ID)
			continue
		}
		if len(f.PlayerIDs) != 4 || hasDuplicates(f.PlayerIDs) {
			addf("foursome %d must have 4 distinct players, has %v", f.ID, f.PlayerIDs)
		}
		members[f.ID] = make(map[int]bool, len(f.PlayerIDs))
		for _, p := range f.PlayerIDs {
			if other, ok := foursomeOf[p]; ok && other != f.ID {
				addf("player %d is in foursomes %d and %d", p, other, f.ID)
			}
			foursomeOf[p] = f.ID
			members[f.ID][p] = true
		}
	}

	pairs := make(map[int]map[pairKey]int)
	busy := make(map[int]map[models.HoleSegment]map[int]bool)
	for _, m := range t.Matchups {
		inFoursome, ok := members[m.FoursomeID]
		if !ok {
			addf("matchup %d vs %d references unknown foursome %d", m.Player1ID, m.Player2ID, m.FoursomeID)
			continue
		}
		if !m.HoleSegment.Valid() {
			addf("foursome %d: matchup %d vs %d has invalid segment %q", m.FoursomeID, m.Player1ID, m.Player2ID, m.HoleSegment)
		}
		if m.Player1ID == m.Player2ID {
			addf("foursome %d: player %d is matched against themselves", m.FoursomeID, m.Player1ID)
			continue
		}
		if !inFoursome[m.Player1ID] || !inFoursome[m.Player2ID] {
			addf("foursome %d: matchup %d vs %d uses a player outside the foursome", m.FoursomeID, m.Player1ID, m.Player2ID)
		}

		if pairs[m.FoursomeID] == nil {
			pairs[m.FoursomeID] = make(map[pairKey]int)
		}
		pairs[m.FoursomeID][newPairKey(m.Player1ID, m.Player2ID)]++

		if busy[m.FoursomeID] == nil {
			busy[m.FoursomeID] = make(map[models.HoleSegment]map[int]bool)
		}
		if busy[m.FoursomeID][m.HoleSegment] == nil {
			busy[m.FoursomeID][m.HoleSegment] = make(map[int]bool)
		}
		for _, p := range []int{m.Player1ID, m.Player2ID} {
			if busy[m.FoursomeID][m.HoleSegment][p] {
				addf("foursome %d: player %d plays twice on holes %s", m.FoursomeID, p, m.HoleSegment)
			}
			busy[m.FoursomeID][m.HoleSegment][p] = true
		}
	}

	for _, f := range t.Foursomes {
		if len(f.PlayerIDs) != 4 {
			continue
		}
		got := pairs[f.ID]
		total := 0
		for _, c := range got {
			total += c
		}
		if total != 6 {
			addf("foursome %d has %d matchups, want 6", f.ID, total)
		}
		for i := 0; i < len(f.PlayerIDs); i++ {
			for j := i + 1; j < len(f.PlayerIDs); j++ {
				key := newPairKey(f.PlayerIDs[i], f.PlayerIDs[j])
				switch c := got[key]; {
				case c == 0:
					addf("foursome %d: missing matchup %d vs %d", f.ID, key.a, key.b)
				case c > 1:
					addf("foursome %d: matchup %d vs %d appears %d times", f.ID, key.a, key.b, c)
				}
			}
		}
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

func validateCourse(course []models.HoleInfo, addf func(string, ...interface{})) {
	if len(course) != courseHoles {
		addf("course must define %d holes, has %d", courseHoles, len(course))
	}
	numbers := make(map[int]bool)
	indexes := make(map[int]bool)
	for _, h := range course {
		if h.Number < 1 || h.Number > courseHoles {
			addf("hole number %d is out of range", h.Number)
		} else if numbers[h.Number] {
			addf("hole %d is defined more than once", h.Number)
		}
		numbers[h.Number] = true

		if h.StrokeIndex < 1 || h.StrokeIndex > courseHoles {
			addf("hole %d has stroke index %d out of range", h.Number, h.StrokeIndex)
		} else if indexes[h.StrokeIndex] {
			addf("stroke index %d is used more than once", h.StrokeIndex)
		}
		indexes[h.StrokeIndex] = true
	}
}
