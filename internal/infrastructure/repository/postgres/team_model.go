package postgres

import (
	"time"

	"github.com/lib/pq"
)

type fantasyTeamTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	UserID      string         `db:"user_id"`
	LeagueID    string         `db:"league_public_id"`
	Name        string         `db:"name"`
	Budget      int64          `db:"budget"`
	DriverIDs   pq.StringArray `db:"driver_public_ids"`
	CaptainID   string         `db:"captain_public_id"`
	ReserveID   string         `db:"reserve_public_id"`
	TotalPoints float64        `db:"total_points"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   *time.Time     `db:"deleted_at"`
}

type fantasyTeamInsertModel struct {
	PublicID    string         `db:"public_id"`
	UserID      string         `db:"user_id"`
	LeagueID    string         `db:"league_public_id"`
	Name        string         `db:"name"`
	Budget      int64          `db:"budget"`
	DriverIDs   pq.StringArray `db:"driver_public_ids"`
	CaptainID   string         `db:"captain_public_id"`
	ReserveID   string         `db:"reserve_public_id"`
	TotalPoints float64        `db:"total_points"`
}
