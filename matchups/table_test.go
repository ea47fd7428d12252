package matchups

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/golf-matchplay/models"
)

func loadFixture(t *testing.T) *Table {
	t.Helper()
	table, err := Load(filepath.Join("testdata", "matchups.yaml"))
	require.NoError(t, err)
	return table
}

func TestLoad(t *testing.T) {
	table := loadFixture(t)
	assert.Equal(t, []int{2025}, table.Years())

	year, err := table.Year(2025)
	require.NoError(t, err)
	assert.Len(t, year.Course, 18)
	assert.Len(t, year.Foursomes, 2)
	assert.Len(t, year.Matchups, 12)
	assert.Len(t, year.MatchupsFor(intPtr(1)), 6)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, year.PlayerIDs(nil))
	assert.Equal(t, []int{5, 6, 7, 8}, year.PlayerIDs(intPtr(2)))
	assert.True(t, year.HasFoursome(2))
	assert.False(t, year.HasFoursome(3))
}

func TestTable_YearNotFound(t *testing.T) {
	table := loadFixture(t)
	_, err := table.Year(1999)
	assert.ErrorIs(t, err, ErrTournamentYearNotFound)

	var nilTable *Table
	_, err = nilTable.Year(2025)
	assert.ErrorIs(t, err, ErrTournamentYearNotFound)
}

func TestTournament_Find(t *testing.T) {
	year, err := loadFixture(t).Year(2025)
	require.NoError(t, err)

	m, swapped, err := year.Find(2, 5, 6, models.SegmentFront)
	require.NoError(t, err)
	assert.False(t, swapped)
	assert.Equal(t, 5, m.Player1ID)

	m, swapped, err = year.Find(2, 8, 6, models.SegmentMiddle)
	require.NoError(t, err)
	assert.True(t, swapped)
	assert.Equal(t, 6, m.Player1ID)
	assert.Equal(t, 8, m.Player2ID)

	_, _, err = year.Find(2, 5, 6, models.SegmentBack)
	assert.ErrorIs(t, err, ErrMatchupNotFound)

	_, _, err = year.Find(1, 5, 6, models.SegmentFront)
	assert.ErrorIs(t, err, ErrMatchupNotFound)
}

func TestTournament_FindByPlayers(t *testing.T) {
	year, err := loadFixture(t).Year(2025)
	require.NoError(t, err)

	m, swapped, err := year.FindByPlayers(7, 6)
	require.NoError(t, err)
	assert.True(t, swapped)
	assert.Equal(t, models.SegmentBack, m.HoleSegment)

	_, _, err = year.FindByPlayers(1, 5)
	assert.ErrorIs(t, err, ErrMatchupNotFound)
}

func TestTournament_SegmentHoles(t *testing.T) {
	year, err := loadFixture(t).Year(2025)
	require.NoError(t, err)

	holes := year.SegmentHoles(models.SegmentMiddle)
	require.Len(t, holes, 6)
	for i, h := range holes {
		assert.Equal(t, 7+i, h.Number)
	}
}

func TestParse_RejectsIncompleteRoundRobin(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "matchups.yaml"))
	require.NoError(t, err)
	broken := strings.Replace(string(data), `- {player1: 6, player2: 7, segment: "13-18"}`, "", 1)

	_, err = Parse([]byte(broken))
	require.Error(t, err)

	var tableErr *TableError
	require.True(t, errors.As(err, &tableErr))
	assert.Equal(t, 2025, tableErr.Year)
	assert.Contains(t, tableErr.Error(), "missing matchup 6 vs 7")
	assert.Contains(t, tableErr.Error(), "has 5 matchups, want 6")
}

func TestParse_RejectsDuplicateYear(t *testing.T) {
	data := []byte("tournaments:\n  - year: 2025\n  - year: 2025\n")
	_, err := Parse(data)
	assert.ErrorContains(t, err, "defined more than once")
}

func TestParse_BadSegment(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "matchups.yaml"))
	require.NoError(t, err)
	broken := strings.Replace(string(data), `segment: "13-18"}`, `segment: "10-15"}`, 1)
	_, err = Parse([]byte(broken))
	assert.ErrorContains(t, err, "unknown hole segment")
}

func TestEncode_KeepsSchedule(t *testing.T) {
	table := loadFixture(t)
	year, err := table.Year(2025)
	require.NoError(t, err)

	out, err := Encode(year)
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	yearAgain, err := again.Year(2025)
	require.NoError(t, err)
	assert.ElementsMatch(t, year.Matchups, yearAgain.Matchups)
}

func intPtr(v int) *int { return &v }
