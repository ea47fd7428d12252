package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dosada05/golf-matchplay/models"
)

func TestPointScale_Validate(t *testing.T) {
	assert.NoError(t, RulesPointScale.Validate())
	assert.NoError(t, DisplayPointScale.Validate())
	assert.ErrorIs(t, PointScale{Win: 3, Tie: 1, Loss: 0}.Validate(), ErrInvalidPointScale)
	assert.ErrorIs(t, PointScale{Win: 1, Tie: 2, Loss: 3}.Validate(), ErrInvalidPointScale)
	assert.ErrorIs(t, PointScale{Win: 1, Tie: 0, Loss: -1}.Validate(), ErrInvalidPointScale)
}

func TestPointScaleByName(t *testing.T) {
	s, err := PointScaleByName("")
	assert.NoError(t, err)
	assert.Equal(t, RulesPointScale, s)

	s, err = PointScaleByName(" Display ")
	assert.NoError(t, err)
	assert.Equal(t, DisplayPointScale, s)

	_, err = PointScaleByName("nassau")
	assert.ErrorIs(t, err, ErrInvalidPointScale)
}

func TestDecideMatch(t *testing.T) {
	strokesToTwo := models.StrokeAllocation{StrokesGiven: 3, StrokeRecipientID: intPtr(2), StrokeHoles: []int{4, 2, 1}}

	tests := []struct {
		name       string
		gross1     int
		gross2     int
		alloc      models.StrokeAllocation
		scale      PointScale
		wantNet1   int
		wantNet2   int
		wantWinner *int
		wantPoints models.PointsAwarded
	}{
		{
			name: "strokes turn a loss into a tie", gross1: 24, gross2: 27, alloc: strokesToTwo, scale: RulesPointScale,
			wantNet1: 24, wantNet2: 24, wantWinner: nil, wantPoints: models.PointsAwarded{Player1: 1, Player2: 1},
		},
		{
			name: "player one wins outright", gross1: 22, gross2: 27, alloc: strokesToTwo, scale: RulesPointScale,
			wantNet1: 22, wantNet2: 24, wantWinner: intPtr(1), wantPoints: models.PointsAwarded{Player1: 2, Player2: 0},
		},
		{
			name: "recipient wins on net", gross1: 25, gross2: 26, alloc: strokesToTwo, scale: DisplayPointScale,
			wantNet1: 25, wantNet2: 23, wantWinner: intPtr(2), wantPoints: models.PointsAwarded{Player1: 0, Player2: 6},
		},
		{
			name: "no strokes, tie on display scale", gross1: 30, gross2: 30, alloc: models.StrokeAllocation{}, scale: DisplayPointScale,
			wantNet1: 30, wantNet2: 30, wantWinner: nil, wantPoints: models.PointsAwarded{Player1: 3, Player2: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideMatch(1, tt.gross1, 2, tt.gross2, tt.alloc, tt.scale)
			assert.Equal(t, tt.wantNet1, got.Player1Net)
			assert.Equal(t, tt.wantNet2, got.Player2Net)
			assert.Equal(t, tt.wantWinner, got.WinnerID)
			assert.Equal(t, tt.wantPoints, got.PointsAwarded)
			assert.Equal(t, tt.scale.MatchTotal(), got.PointsAwarded.Player1+got.PointsAwarded.Player2)
		})
	}
}

func TestDecideMatch_PointTotalIsConstant(t *testing.T) {
	for _, scale := range []PointScale{RulesPointScale, DisplayPointScale, {Win: 4, Tie: 2, Loss: 0}} {
		for g1 := 18; g1 <= 36; g1++ {
			for g2 := 18; g2 <= 36; g2++ {
				alloc := AllocateStrokes(1, 5, 2, 14, frontNine(), DefaultStrokePolicy)
				got := DecideMatch(1, g1, 2, g2, alloc, scale)
				assert.Equal(t, scale.MatchTotal(), got.PointsAwarded.Player1+got.PointsAwarded.Player2)
			}
		}
	}
}
