package postgres

import "time"

type teamRaceResultTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	TeamID      string     `db:"team_public_id"`
	RaceID      string     `db:"race_public_id"`
	LeagueID    string     `db:"league_public_id"`
	CaptainID   string     `db:"captain_public_id"`
	ReserveID   string     `db:"reserve_public_id"`
	TotalPoints float64    `db:"total_points"`
	Drivers     []byte     `db:"drivers"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type teamRaceResultInsertModel struct {
	PublicID    string  `db:"public_id"`
	TeamID      string  `db:"team_public_id"`
	RaceID      string  `db:"race_public_id"`
	LeagueID    string  `db:"league_public_id"`
	CaptainID   string  `db:"captain_public_id"`
	ReserveID   string  `db:"reserve_public_id"`
	TotalPoints float64 `db:"total_points"`
	Drivers     []byte  `db:"drivers"`
}
