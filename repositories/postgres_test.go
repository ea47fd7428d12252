package repositories_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/golf-matchplay/db"
	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/repositories"
)

// openTestDB connects to TEST_DATABASE_URL and resets the schema. Tests are
// skipped when the variable is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	conn, err := db.Connect(dsn, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	_, err = conn.ExecContext(ctx, `DROP TABLE IF EXISTS match_results, players, schema_migrations`)
	require.NoError(t, err)
	_, err = db.Migrate(ctx, conn, nil)
	require.NoError(t, err)
	return conn
}

func createPlayers(t *testing.T, repo repositories.PlayerRepository, n int) []*models.Player {
	t.Helper()
	faker := gofakeit.New(42)
	players := make([]*models.Player, 0, n)
	for i := 0; i < n; i++ {
		p := &models.Player{
			Name:     faker.Name(),
			Handicap: faker.Number(0, 24),
			PinHash:  "x",
		}
		require.NoError(t, repo.Create(context.Background(), nil, p))
		players = append(players, p)
	}
	return players
}

func TestPlayerRepository_Postgres(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	repo := repositories.NewPostgresPlayerRepository(conn)

	players := createPlayers(t, repo, 3)

	got, err := repo.GetByID(ctx, players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, players[0].Name, got.Name)
	assert.Equal(t, models.RolePlayer, got.Role)

	dup := &models.Player{Name: players[0].Name, PinHash: "x"}
	assert.ErrorIs(t, repo.Create(ctx, nil, dup), repositories.ErrPlayerNameConflict)

	require.NoError(t, repo.UpdateHandicap(ctx, players[1].ID, 30))
	got, err = repo.GetByID(ctx, players[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Handicap)

	subset, err := repo.ListByIDs(ctx, []int{players[0].ID, players[2].ID})
	require.NoError(t, err)
	assert.Len(t, subset, 2)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, repositories.ErrPlayerNotFound)
	assert.ErrorIs(t, repo.UpdateHandicap(ctx, 9999, 1), repositories.ErrPlayerNotFound)
}

func TestMatchResultRepository_Postgres(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	players := createPlayers(t, repositories.NewPostgresPlayerRepository(conn), 2)
	repo := repositories.NewPostgresMatchResultRepository(conn)

	p1, p2 := players[0].ID, players[1].ID
	newResult := func() *models.MatchResult {
		return &models.MatchResult{
			TournamentYear:    2025,
			FoursomeGroupID:   1,
			Player1ID:         p1,
			Player2ID:         p2,
			Player1Handicap:   8,
			Player2Handicap:   17,
			HoleSegment:       models.SegmentFront,
			StrokesGiven:      3,
			StrokeRecipientID: &p2,
			StrokeHoles:       []int{4, 2, 1},
			Player1Gross:      24,
			Player2Gross:      27,
			Player1Net:        24,
			Player2Net:        24,
			PointsAwarded:     models.PointsAwarded{Player1: 1, Player2: 1},
			SubmittedBy:       p1,
		}
	}

	first := newResult()
	require.NoError(t, repo.CreateIfAbsent(ctx, nil, first))
	assert.NotZero(t, first.ID)

	assert.ErrorIs(t, repo.CreateIfAbsent(ctx, nil, newResult()), repositories.ErrMatchResultConflict)

	got, err := repo.GetByID(ctx, nil, 2025, first.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 1}, got.StrokeHoles)
	assert.Nil(t, got.WinnerID)

	got.Player2Gross = 30
	got.Player2Net = 27
	got.WinnerID = &p1
	got.PointsAwarded = models.PointsAwarded{Player1: 2, Player2: 0}
	require.NoError(t, repo.UpdateOutcome(ctx, nil, got))

	list, err := repo.ListByYear(ctx, 2025, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].PointsAwarded.Player1)

	other := 2
	list, err = repo.ListByYear(ctx, 2025, &other)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.SetScorecardKey(ctx, 2025, first.ID, "scorecards/2025/1.jpg"))
	require.NoError(t, repo.Delete(ctx, 2025, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, 2025, first.ID), repositories.ErrMatchResultNotFound)
	_, err = repo.GetByID(ctx, nil, 2025, first.ID, false)
	assert.ErrorIs(t, err, repositories.ErrMatchResultNotFound)
}
