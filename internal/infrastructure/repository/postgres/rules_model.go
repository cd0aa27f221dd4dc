package postgres

import "time"

type ruleSetTableModel struct {
	ID                     int64      `db:"id"`
	LeagueID               string     `db:"league_public_id"`
	RacePoints             []byte     `db:"race_points"`
	SprintPoints           []byte     `db:"sprint_points"`
	PoleBonus              float64    `db:"pole_bonus"`
	SprintPoleBonus        float64    `db:"sprint_pole_bonus"`
	Q3Bonus                float64    `db:"q3_bonus"`
	Q2Bonus                float64    `db:"q2_bonus"`
	Q1Malus                float64    `db:"q1_malus"`
	GridPenaltyMalus       float64    `db:"grid_penalty_malus"`
	DNFMalus               float64    `db:"dnf_malus"`
	LastPlaceMalus         float64    `db:"last_place_malus"`
	TeammateBeatBonus      float64    `db:"teammate_beat_bonus"`
	TeammateLostMalus      float64    `db:"teammate_lost_malus"`
	TeammateBeatDNFBonus   float64    `db:"teammate_beat_dnf_bonus"`
	OvertakeTop10Delta     float64    `db:"overtake_top10_delta"`
	OvertakeOutsideDelta   float64    `db:"overtake_outside_delta"`
	CaptainMultiplier      float64    `db:"captain_multiplier"`
	ConstructorMultipliers []byte     `db:"constructor_multipliers"`
	CreatedAt              time.Time  `db:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at"`
	DeletedAt              *time.Time `db:"deleted_at"`
}

type ruleSetInsertModel struct {
	LeagueID               string  `db:"league_public_id"`
	RacePoints             []byte  `db:"race_points"`
	SprintPoints           []byte  `db:"sprint_points"`
	PoleBonus              float64 `db:"pole_bonus"`
	SprintPoleBonus        float64 `db:"sprint_pole_bonus"`
	Q3Bonus                float64 `db:"q3_bonus"`
	Q2Bonus                float64 `db:"q2_bonus"`
	Q1Malus                float64 `db:"q1_malus"`
	GridPenaltyMalus       float64 `db:"grid_penalty_malus"`
	DNFMalus               float64 `db:"dnf_malus"`
	LastPlaceMalus         float64 `db:"last_place_malus"`
	TeammateBeatBonus      float64 `db:"teammate_beat_bonus"`
	TeammateLostMalus      float64 `db:"teammate_lost_malus"`
	TeammateBeatDNFBonus   float64 `db:"teammate_beat_dnf_bonus"`
	OvertakeTop10Delta     float64 `db:"overtake_top10_delta"`
	OvertakeOutsideDelta   float64 `db:"overtake_outside_delta"`
	CaptainMultiplier      float64 `db:"captain_multiplier"`
	ConstructorMultipliers []byte  `db:"constructor_multipliers"`
}
