package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/golf-matchplay/models"
)

func frontNine() []models.HoleInfo {
	return []models.HoleInfo{
		{Number: 1, Par: 4, StrokeIndex: 7},
		{Number: 2, Par: 5, StrokeIndex: 3},
		{Number: 3, Par: 3, StrokeIndex: 15},
		{Number: 4, Par: 4, StrokeIndex: 1},
		{Number: 5, Par: 4, StrokeIndex: 11},
		{Number: 6, Par: 3, StrokeIndex: 9},
	}
}

func TestStrokePolicy_StrokesForGap(t *testing.T) {
	policy := DefaultStrokePolicy
	tests := []struct {
		gap  int
		want int
	}{
		{0, 0}, {1, 0}, {2, 0},
		{3, 1}, {4, 1}, {5, 1},
		{6, 2}, {9, 3}, {17, 5},
		{18, 6}, {30, 6}, {-9, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, policy.StrokesForGap(tt.gap), "gap %d", tt.gap)
	}
}

func TestStrokePolicy_Validate(t *testing.T) {
	assert.NoError(t, DefaultStrokePolicy.Validate())
	assert.ErrorIs(t, StrokePolicy{Divisor: 0, Cap: 6}.Validate(), ErrInvalidStrokePolicy)
	assert.ErrorIs(t, StrokePolicy{Divisor: 3, Cap: 7}.Validate(), ErrInvalidStrokePolicy)
	assert.ErrorIs(t, StrokePolicy{Divisor: 3, Cap: -1}.Validate(), ErrInvalidStrokePolicy)
}

func TestAllocateStrokes(t *testing.T) {
	tests := []struct {
		name          string
		h1, h2        int
		wantStrokes   int
		wantRecipient *int
		wantHoles     []int
	}{
		{name: "equal handicaps", h1: 12, h2: 12, wantStrokes: 0, wantHoles: []int{}},
		{name: "gap below divisor", h1: 10, h2: 12, wantStrokes: 0, wantHoles: []int{}},
		{name: "one stroke to player two", h1: 10, h2: 13, wantStrokes: 1, wantRecipient: intPtr(2), wantHoles: []int{4}},
		{name: "handicaps 8 and 17", h1: 8, h2: 17, wantStrokes: 3, wantRecipient: intPtr(2), wantHoles: []int{4, 2, 1}},
		{name: "player one higher", h1: 20, h2: 14, wantStrokes: 2, wantRecipient: intPtr(1), wantHoles: []int{4, 2}},
		{name: "capped at six", h1: 0, h2: 36, wantStrokes: 6, wantRecipient: intPtr(2), wantHoles: []int{4, 2, 1, 6, 5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateStrokes(1, tt.h1, 2, tt.h2, frontNine(), DefaultStrokePolicy)
			assert.Equal(t, tt.wantStrokes, got.StrokesGiven)
			assert.Equal(t, tt.wantRecipient, got.StrokeRecipientID)
			assert.Equal(t, tt.wantHoles, got.StrokeHoles)
		})
	}
}

func TestAllocateStrokes_TieOnStrokeIndexBreaksByHoleNumber(t *testing.T) {
	holes := []models.HoleInfo{
		{Number: 9, StrokeIndex: 2},
		{Number: 8, StrokeIndex: 2},
		{Number: 7, StrokeIndex: 5},
	}
	got := AllocateStrokes(1, 0, 2, 6, holes, DefaultStrokePolicy)
	assert.Equal(t, []int{8, 9}, got.StrokeHoles)
}

func TestAllocateStrokes_Properties(t *testing.T) {
	holes := frontNine()
	valid := map[int]bool{}
	for _, h := range holes {
		valid[h.Number] = true
	}

	for h1 := 0; h1 <= 40; h1++ {
		for h2 := 0; h2 <= 40; h2++ {
			got := AllocateStrokes(10, h1, 20, h2, holes, DefaultStrokePolicy)

			gap := h1 - h2
			if gap < 0 {
				gap = -gap
			}
			want := gap / 3
			if want > 6 {
				want = 6
			}
			require.Equal(t, want, got.StrokesGiven, "h1=%d h2=%d", h1, h2)
			require.Len(t, got.StrokeHoles, got.StrokesGiven)

			if h1 == h2 || got.StrokesGiven == 0 {
				require.Nil(t, got.StrokeRecipientID)
			} else {
				require.NotNil(t, got.StrokeRecipientID)
				if h1 > h2 {
					require.Equal(t, 10, *got.StrokeRecipientID)
				} else {
					require.Equal(t, 20, *got.StrokeRecipientID)
				}
			}

			seen := map[int]bool{}
			for _, hole := range got.StrokeHoles {
				require.True(t, valid[hole], "hole %d not in segment", hole)
				require.False(t, seen[hole], "hole %d duplicated", hole)
				seen[hole] = true
			}
		}
	}
}

func TestAllocateStrokes_DoesNotReorderInput(t *testing.T) {
	holes := frontNine()
	_ = AllocateStrokes(1, 0, 2, 18, holes, DefaultStrokePolicy)
	assert.Equal(t, frontNine(), holes)
}

func TestDescribeAllocation(t *testing.T) {
	names := map[int]string{1: "Jack", 2: "Arnold"}

	assert.Equal(t, "No strokes given", DescribeAllocation(models.StrokeAllocation{}, names))
	assert.Equal(t, "Arnold receives 3 strokes on holes 4, 2, 1",
		DescribeAllocation(AllocateStrokes(1, 8, 2, 17, frontNine(), DefaultStrokePolicy), names))
	assert.Equal(t, "Jack receives 1 stroke on hole 4",
		DescribeAllocation(AllocateStrokes(1, 13, 2, 10, frontNine(), DefaultStrokePolicy), names))
	assert.Equal(t, "Player 7 receives 1 stroke on hole 4",
		DescribeAllocation(AllocateStrokes(7, 13, 2, 10, frontNine(), DefaultStrokePolicy), names))
}

func intPtr(v int) *int { return &v }
