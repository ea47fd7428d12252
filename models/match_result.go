package models

import "time"

type PointsAwarded struct {
	Player1 int `json:"player1" db:"player1_points"`
	Player2 int `json:"player2" db:"player2_points"`
}

// MatchResult is the recorded outcome of one segment match.
// WinnerID == nil means the segment was halved.
type MatchResult struct {
	ID                int           `json:"id" db:"id"`
	TournamentYear    int           `json:"tournament_year" db:"tournament_year"`
	FoursomeGroupID   int           `json:"foursome_group_id" db:"foursome_group_id"`
	Player1ID         int           `json:"player1_id" db:"player1_id"`
	Player2ID         int           `json:"player2_id" db:"player2_id"`
	Player1Handicap   int           `json:"player1_handicap" db:"player1_handicap"`
	Player2Handicap   int           `json:"player2_handicap" db:"player2_handicap"`
	HoleSegment       HoleSegment   `json:"hole_segment" db:"hole_segment"`
	StrokesGiven      int           `json:"strokes_given" db:"strokes_given"`
	StrokeRecipientID *int          `json:"stroke_recipient_id" db:"stroke_recipient_id"`
	StrokeHoles       []int         `json:"stroke_holes" db:"stroke_holes"`
	Player1Gross      int           `json:"player1_gross_score" db:"player1_gross"`
	Player2Gross      int           `json:"player2_gross_score" db:"player2_gross"`
	Player1Net        int           `json:"player1_net_score" db:"player1_net"`
	Player2Net        int           `json:"player2_net_score" db:"player2_net"`
	WinnerID          *int          `json:"winner_id" db:"winner_id"`
	PointsAwarded     PointsAwarded `json:"points_awarded"`
	SubmittedBy       int           `json:"submitted_by" db:"submitted_by"`
	ScorecardKey      *string       `json:"-" db:"scorecard_key"`
	ScorecardURL      *string       `json:"scorecard_url,omitempty" db:"-"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

// PointsFor returns the points the player earned in this result, and whether
// the player took part at all.
func (r *MatchResult) PointsFor(playerID int) (int, bool) {
	switch playerID {
	case r.Player1ID:
		return r.PointsAwarded.Player1, true
	case r.Player2ID:
		return r.PointsAwarded.Player2, true
	}
	return 0, false
}

// IsTie reports whether the segment was halved.
func (r *MatchResult) IsTie() bool {
	return r.WinnerID == nil
}
