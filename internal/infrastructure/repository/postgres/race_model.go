package postgres

import (
	"database/sql"
	"time"
)

type raceTableModel struct {
	ID                 int64         `db:"id"`
	PublicID           string        `db:"public_id"`
	LeagueID           string        `db:"league_public_id"`
	Name               string        `db:"name"`
	Round              int           `db:"round"`
	Circuit            string        `db:"circuit"`
	ScheduledAt        sql.NullInt64 `db:"scheduled_at"`
	HasSprint          bool          `db:"has_sprint"`
	QualifyingAt       sql.NullInt64 `db:"qualifying_at"`
	SprintQualifyingAt sql.NullInt64 `db:"sprint_qualifying_at"`
	Completed          bool          `db:"completed"`
	Results            []byte        `db:"results"`
	CreatedAt          time.Time     `db:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at"`
	DeletedAt          *time.Time    `db:"deleted_at"`
}

type raceInsertModel struct {
	PublicID           string `db:"public_id"`
	LeagueID           string `db:"league_public_id"`
	Name               string `db:"name"`
	Round              int    `db:"round"`
	Circuit            string `db:"circuit"`
	ScheduledAt        *int64 `db:"scheduled_at"`
	HasSprint          bool   `db:"has_sprint"`
	QualifyingAt       *int64 `db:"qualifying_at"`
	SprintQualifyingAt *int64 `db:"sprint_qualifying_at"`
	Completed          bool   `db:"completed"`
}
