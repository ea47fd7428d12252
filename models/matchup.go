package models

// Matchup — одна пара игроков внутри четвёрки на конкретном отрезке из 6 лунок.
// Таблица матчей статична для года турнира.
type Matchup struct {
	TournamentYear    int         `json:"tournament_year"`
	FoursomeID        int         `json:"foursome_id"`
	Player1ID         int         `json:"player1_id"`
	Player2ID         int         `json:"player2_id"`
	HoleSegment       HoleSegment `json:"hole_segment"`
	StrokeDescription string      `json:"stroke_description,omitempty"`
}

// Involves reports whether playerID is one of the two players.
func (m Matchup) Involves(playerID int) bool {
	return m.Player1ID == playerID || m.Player2ID == playerID
}

// Foursome is a group of four players that play a round-robin between themselves.
type Foursome struct {
	ID        int   `json:"id" yaml:"id"`
	PlayerIDs []int `json:"player_ids" yaml:"players"`
}

// StrokeAllocation is the result of distributing handicap strokes over a segment.
type StrokeAllocation struct {
	StrokesGiven      int   `json:"strokes_given"`
	StrokeRecipientID *int  `json:"stroke_recipient_id"`
	StrokeHoles       []int `json:"stroke_holes"`
}

// StrokesFor returns how many strokes playerID receives under the allocation.
func (a StrokeAllocation) StrokesFor(playerID int) int {
	if a.StrokeRecipientID != nil && *a.StrokeRecipientID == playerID {
		return a.StrokesGiven
	}
	return 0
}
