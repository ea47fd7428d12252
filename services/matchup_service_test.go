package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/golf-matchplay/models"
	"github.com/Dosada05/golf-matchplay/scoring"
)

func TestListMatchups_ComputesStrokes(t *testing.T) {
	svc := NewMatchupService(loadTestTable(t), seedPlayers(), scoring.DefaultStrokePolicy, nil)

	one := 1
	views, err := svc.ListMatchups(context.Background(), testYear, &one)
	require.NoError(t, err)
	require.Len(t, views, 6)

	var found bool
	for _, v := range views {
		assert.Equal(t, 1, v.FoursomeID)
		if v.Player1ID == 1 && v.Player2ID == 4 {
			found = true
			assert.Equal(t, models.SegmentFront, v.HoleSegment)
			assert.Equal(t, 3, v.Allocation.StrokesGiven)
			assert.Equal(t, "Dana receives 3 strokes on holes 4, 2, 1", v.StrokeDescription)
			assert.Equal(t, "Alice", v.Player1Name)
		}
		if v.Player1Handicap == v.Player2Handicap {
			assert.Equal(t, "No strokes given", v.StrokeDescription)
		}
	}
	assert.True(t, found, "1 vs 4 must be scheduled")

	all, err := svc.ListMatchups(context.Background(), testYear, nil)
	require.NoError(t, err)
	assert.Len(t, all, 12)
}

func TestListMatchups_Errors(t *testing.T) {
	table := loadTestTable(t)
	ctx := context.Background()

	svc := NewMatchupService(table, seedPlayers(), scoring.DefaultStrokePolicy, nil)
	_, err := svc.ListMatchups(ctx, 1999, nil)
	assert.ErrorIs(t, err, ErrTournamentYearNotFound)

	missing := 3
	_, err = svc.ListMatchups(ctx, testYear, &missing)
	assert.ErrorIs(t, err, ErrNotFound)

	partial := newFakePlayerRepo(&models.Player{ID: 1, Name: "Alice", Handicap: 8})
	svc = NewMatchupService(table, partial, scoring.DefaultStrokePolicy, nil)
	_, err = svc.ListMatchups(ctx, testYear, nil)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestAllocate(t *testing.T) {
	svc := NewMatchupService(loadTestTable(t), seedPlayers(), scoring.DefaultStrokePolicy, nil)
	ctx := context.Background()

	view, err := svc.Allocate(ctx, testYear, 4, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Player1ID, "players come back in table order")
	assert.Equal(t, models.SegmentFront, view.HoleSegment)
	assert.Len(t, view.Holes, 6)
	assert.Equal(t, []int{4, 2, 1}, view.Allocation.StrokeHoles)
	assert.Equal(t, "Dana receives 3 strokes on holes 4, 2, 1", view.Description)

	view, err = svc.Allocate(ctx, testYear, 5, 8, "13-18")
	require.NoError(t, err)
	// 0 vs 36: capped at 6, every hole of the segment
	assert.Equal(t, 6, view.Allocation.StrokesGiven)
	assert.ElementsMatch(t, []int{13, 14, 15, 16, 17, 18}, view.Allocation.StrokeHoles)

	_, err = svc.Allocate(ctx, testYear, 1, 4, "7-12")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "segment")

	_, err = svc.Allocate(ctx, testYear, 1, 5, "")
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "matchup")

	_, err = svc.Allocate(ctx, testYear, 2, 2, "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestAllocate_CustomPolicy(t *testing.T) {
	svc := NewMatchupService(loadTestTable(t), seedPlayers(), scoring.StrokePolicy{Divisor: 2, Cap: 2}, nil)
	view, err := svc.Allocate(context.Background(), testYear, 1, 4, "1-6")
	require.NoError(t, err)
	assert.Equal(t, 2, view.Allocation.StrokesGiven)
	assert.Equal(t, []int{4, 2}, view.Allocation.StrokeHoles)
}
