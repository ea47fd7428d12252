package models

// PlayerStanding is derived on read from the recorded match results; it is never stored.
type PlayerStanding struct {
	Rank          int    `json:"rank"`
	PlayerID      int    `json:"player_id"`
	Name          string `json:"name"`
	TotalPoints   int    `json:"total_points"`
	MatchesPlayed int    `json:"matches_played"`
	MatchesWon    int    `json:"matches_won"`
	MatchesTied   int    `json:"matches_tied"`
	MatchesLost   int    `json:"matches_lost"`
}
