package matchups

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Dosada05/golf-matchplay/models"
)

var (
	ErrTournamentYearNotFound = errors.New("tournament year not found in matchup table")
	ErrMatchupNotFound        = errors.New("matchup not found in matchup table")
)

// File is the on-disk layout of the matchup table.
type File struct {
	Tournaments []TournamentConfig `yaml:"tournaments"`
}

type TournamentConfig struct {
	Year      int               `yaml:"year"`
	Course    []models.HoleInfo `yaml:"course"`
	Foursomes []FoursomeConfig  `yaml:"foursomes"`
}

type FoursomeConfig struct {
	ID       int             `yaml:"id"`
	Players  []int           `yaml:"players"`
	Matchups []MatchupConfig `yaml:"matchups,omitempty"`
}

type MatchupConfig struct {
	Player1 int    `yaml:"player1"`
	Player2 int    `yaml:"player2"`
	Segment string `yaml:"segment"`
}

// Table holds the validated matchup schedule of every configured tournament year.
type Table struct {
	years map[int]*Tournament
}

// Tournament is the matchup schedule of a single year.
type Tournament struct {
	Year      int
	Course    []models.HoleInfo
	Foursomes []models.Foursome
	Matchups  []models.Matchup
}

// Load reads and validates a matchup table file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matchup table %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a matchup table, fills in generated round-robin matchups for foursomes
// that list none, and validates every year.
func Parse(data []byte) (*Table, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matchup table: %w", err)
	}
	return Build(file, NewRoundRobinGenerator())
}

// Build turns a decoded file into a Table. gen fills foursomes without explicit matchups.
func Build(file File, gen Generator) (*Table, error) {
	table := &Table{years: make(map[int]*Tournament, len(file.Tournaments))}

	seen := make(map[int]bool, len(file.Tournaments))
	for _, tc := range file.Tournaments {
		if seen[tc.Year] {
			return nil, fmt.Errorf("tournament year %d is defined more than once", tc.Year)
		}
		seen[tc.Year] = true
	}

	for _, tc := range file.Tournaments {
		t, err := buildTournament(tc, gen)
		if err != nil {
			return nil, err
		}
		if err := Validate(t); err != nil {
			return nil, err
		}
		table.years[tc.Year] = t
	}
	return table, nil
}

func buildTournament(tc TournamentConfig, gen Generator) (*Tournament, error) {
	t := &Tournament{
		Year:   tc.Year,
		Course: append([]models.HoleInfo(nil), tc.Course...),
	}
	sort.Slice(t.Course, func(i, j int) bool { return t.Course[i].Number < t.Course[j].Number })

	for _, fc := range tc.Foursomes {
		foursome := models.Foursome{ID: fc.ID, PlayerIDs: append([]int(nil), fc.Players...)}
		t.Foursomes = append(t.Foursomes, foursome)

		if len(fc.Matchups) == 0 {
			generated, err := gen.Generate(tc.Year, foursome)
			if err != nil {
				return nil, fmt.Errorf("year %d foursome %d: %w", tc.Year, fc.ID, err)
			}
			t.Matchups = append(t.Matchups, generated...)
			continue
		}

		for _, mc := range fc.Matchups {
			seg, err := models.ParseHoleSegment(mc.Segment)
			if err != nil {
				return nil, fmt.Errorf("year %d foursome %d: %w", tc.Year, fc.ID, err)
			}
			t.Matchups = append(t.Matchups, models.Matchup{
				TournamentYear: tc.Year,
				FoursomeID:     fc.ID,
				Player1ID:      mc.Player1,
				Player2ID:      mc.Player2,
				HoleSegment:    seg,
			})
		}
	}
	return t, nil
}

// Year returns the schedule for a tournament year.
func (t *Table) Year(year int) (*Tournament, error) {
	if t == nil {
		return nil, ErrTournamentYearNotFound
	}
	tournament, ok := t.years[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrTournamentYearNotFound, year)
	}
	return tournament, nil
}

// Years lists configured years in ascending order.
func (t *Table) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Find looks up the matchup between two players on a segment regardless of the order
// the players are given in. swapped is true when player1/player2 are reversed relative
// to the table.
func (t *Tournament) Find(foursomeID, player1ID, player2ID int, segment models.HoleSegment) (m models.Matchup, swapped bool, err error) {
	for _, candidate := range t.Matchups {
		if candidate.FoursomeID != foursomeID || candidate.HoleSegment != segment {
			continue
		}
		if candidate.Player1ID == player1ID && candidate.Player2ID == player2ID {
			return candidate, false, nil
		}
		if candidate.Player1ID == player2ID && candidate.Player2ID == player1ID {
			return candidate, true, nil
		}
	}
	return models.Matchup{}, false, fmt.Errorf("%w: year %d foursome %d players %d/%d segment %s",
		ErrMatchupNotFound, t.Year, foursomeID, player1ID, player2ID, segment)
}

// FindByPlayers looks up the matchup between two players anywhere in the year.
func (t *Tournament) FindByPlayers(player1ID, player2ID int) (m models.Matchup, swapped bool, err error) {
	for _, candidate := range t.Matchups {
		if candidate.Player1ID == player1ID && candidate.Player2ID == player2ID {
			return candidate, false, nil
		}
		if candidate.Player1ID == player2ID && candidate.Player2ID == player1ID {
			return candidate, true, nil
		}
	}
	return models.Matchup{}, false, fmt.Errorf("%w: year %d players %d/%d", ErrMatchupNotFound, t.Year, player1ID, player2ID)
}

// MatchupsFor returns the schedule, optionally restricted to one foursome.
func (t *Tournament) MatchupsFor(foursomeID *int) []models.Matchup {
	out := make([]models.Matchup, 0, len(t.Matchups))
	for _, m := range t.Matchups {
		if foursomeID != nil && m.FoursomeID != *foursomeID {
			continue
		}
		out = append(out, m)
	}
	return out
}

// PlayerIDs returns every player scheduled in the year (or one foursome), in table order.
func (t *Tournament) PlayerIDs(foursomeID *int) []int {
	seen := make(map[int]bool)
	ids := make([]int, 0)
	for _, f := range t.Foursomes {
		if foursomeID != nil && f.ID != *foursomeID {
			continue
		}
		for _, id := range f.PlayerIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// HasFoursome reports whether the foursome exists in the year.
func (t *Tournament) HasFoursome(foursomeID int) bool {
	for _, f := range t.Foursomes {
		if f.ID == foursomeID {
			return true
		}
	}
	return false
}

// SegmentHoles returns the course holes belonging to a segment.
func (t *Tournament) SegmentHoles(segment models.HoleSegment) []models.HoleInfo {
	holes := make([]models.HoleInfo, 0, models.HolesPerSegment)
	for _, h := range t.Course {
		if segment.Contains(h.Number) {
			holes = append(holes, h)
		}
	}
	return holes
}

// Encode renders tournaments back into the file layout with explicit matchups.
func Encode(tournaments ...*Tournament) ([]byte, error) {
	file := File{}
	for _, t := range tournaments {
		tc := TournamentConfig{Year: t.Year, Course: t.Course}
		for _, f := range t.Foursomes {
			fc := FoursomeConfig{ID: f.ID, Players: f.PlayerIDs}
			for _, m := range t.Matchups {
				if m.FoursomeID != f.ID {
					continue
				}
				fc.Matchups = append(fc.Matchups, MatchupConfig{Player1: m.Player1ID, Player2: m.Player2ID, Segment: string(m.HoleSegment)})
			}
			tc.Foursomes = append(tc.Foursomes, fc)
		}
		file.Tournaments = append(file.Tournaments, tc)
	}
	out, err := yaml.Marshal(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal matchup table: %w", err)
	}
	return out, nil
}
