package models

import "time"

type PlayerRole string

const (
	RolePlayer PlayerRole = "player"
	RoleAdmin  PlayerRole = "admin"
)

// Player — участник ежегодного турнира. Handicap хранится целым числом,
// из него считаются удары форы в матчах.
type Player struct {
	ID        int        `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Handicap  int        `json:"handicap" db:"handicap"`
	Role      PlayerRole `json:"role" db:"role"`
	PinHash   string     `json:"-" db:"pin_hash"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
