package scoring

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/golf-matchplay/models"
)

func result(p1, p2 int, winner *int, scale PointScale) *models.MatchResult {
	r := &models.MatchResult{Player1ID: p1, Player2ID: p2, WinnerID: winner}
	switch {
	case winner == nil:
		r.PointsAwarded = models.PointsAwarded{Player1: scale.Tie, Player2: scale.Tie}
	case *winner == p1:
		r.PointsAwarded = models.PointsAwarded{Player1: scale.Win, Player2: scale.Loss}
	default:
		r.PointsAwarded = models.PointsAwarded{Player1: scale.Loss, Player2: scale.Win}
	}
	return r
}

func TestBuildStandings(t *testing.T) {
	names := map[int]string{1: "Dana", 2: "Chris", 3: "Bea", 4: "Alex"}
	results := []*models.MatchResult{
		result(1, 2, intPtr(1), RulesPointScale),
		result(3, 4, nil, RulesPointScale),
		result(1, 3, intPtr(3), RulesPointScale),
	}

	got := BuildStandings([]int{1, 2, 3, 4}, names, results)

	want := []models.PlayerStanding{
		{Rank: 1, PlayerID: 3, Name: "Bea", TotalPoints: 3, MatchesPlayed: 2, MatchesWon: 1, MatchesTied: 1},
		{Rank: 2, PlayerID: 1, Name: "Dana", TotalPoints: 2, MatchesPlayed: 2, MatchesWon: 1, MatchesLost: 1},
		{Rank: 3, PlayerID: 4, Name: "Alex", TotalPoints: 1, MatchesPlayed: 1, MatchesTied: 1},
		{Rank: 4, PlayerID: 2, Name: "Chris", TotalPoints: 0, MatchesPlayed: 1, MatchesLost: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildStandings() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStandings_PlayerWithoutMatchesAppears(t *testing.T) {
	got := BuildStandings([]int{5, 6}, map[int]string{5: "Eve", 6: "Finn"}, nil)
	require.Len(t, got, 2)
	for _, s := range got {
		assert.Zero(t, s.TotalPoints)
		assert.Zero(t, s.MatchesPlayed)
		assert.Equal(t, 1, s.Rank)
	}
	assert.Equal(t, "Eve", got[0].Name)
	assert.Equal(t, "Finn", got[1].Name)
}

func TestBuildStandings_TiesBrokenByNameThenID(t *testing.T) {
	names := map[int]string{1: "Sam", 2: "Sam", 3: "Ann"}
	got := BuildStandings([]int{2, 1, 3}, names, nil)
	require.Len(t, got, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{got[0].PlayerID, got[1].PlayerID, got[2].PlayerID})
}

func TestBuildStandings_UnknownNameFallsBack(t *testing.T) {
	got := BuildStandings([]int{42}, nil, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Player 42", got[0].Name)
}

func TestBuildStandings_FoldLaw(t *testing.T) {
	faker := gofakeit.New(20240601)
	roster := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for iteration := 0; iteration < 50; iteration++ {
		count := faker.Number(0, 40)
		results := make([]*models.MatchResult, 0, count)
		expected := map[int]int{}

		for i := 0; i < count; i++ {
			p1 := roster[faker.Number(0, len(roster)-1)]
			p2 := roster[faker.Number(0, len(roster)-1)]
			if p1 == p2 {
				continue
			}
			var winner *int
			switch faker.Number(0, 2) {
			case 0:
				winner = intPtr(p1)
			case 1:
				winner = intPtr(p2)
			}
			r := result(p1, p2, winner, DisplayPointScale)
			results = append(results, r)
			expected[p1] += r.PointsAwarded.Player1
			expected[p2] += r.PointsAwarded.Player2
		}

		standings := BuildStandings(roster, nil, results)
		require.Len(t, standings, len(roster))
		for _, s := range standings {
			assert.Equal(t, expected[s.PlayerID], s.TotalPoints, "player %d", s.PlayerID)
			assert.Equal(t, s.MatchesPlayed, s.MatchesWon+s.MatchesTied+s.MatchesLost)
		}
		for i := 1; i < len(standings); i++ {
			assert.GreaterOrEqual(t, standings[i-1].TotalPoints, standings[i].TotalPoints)
		}
	}
}

func TestBuildStandings_IncludesPlayersOnlySeenInResults(t *testing.T) {
	results := []*models.MatchResult{result(1, 9, intPtr(9), RulesPointScale)}
	got := BuildStandings([]int{1}, nil, results)
	require.Len(t, got, 2)
	assert.Equal(t, 9, got[0].PlayerID)
	assert.Equal(t, 2, got[0].TotalPoints)
}
