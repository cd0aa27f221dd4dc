package postgres

import "time"

type driverTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	LeagueID      string     `db:"league_public_id"`
	ConstructorID string     `db:"constructor_public_id"`
	Name          string     `db:"name"`
	Number        int        `db:"number"`
	Price         int64      `db:"price"`
	SeasonPoints  float64    `db:"season_points"`
	ImageURL      string     `db:"image_url"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type constructorTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	LeagueID  string     `db:"league_public_id"`
	Name      string     `db:"name"`
	Color     string     `db:"color"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
