package scoring

import "time"

// TeamResult is the immutable snapshot of one team's score for one race.
// It is written exactly once per (team, race) during race sync and never
// mutated afterwards.
type TeamResult struct {
	ID          string
	TeamID      string
	RaceID      string
	LeagueID    string
	CaptainID   string
	ReserveID   string
	TotalPoints float64
	Drivers     []DriverScore
	CreatedAt   time.Time
}

// ResultsPayload is the persisted race-results document. It must
// round-trip: re-reading it reproduces the same team totals without
// recomputation.
type ResultsPayload struct {
	Quali             map[string]int       `json:"quali"`
	Race              map[string]int       `json:"race"`
	SprintQuali       map[string]int       `json:"sprintQuali,omitempty"`
	Sprint            map[string]int       `json:"sprint,omitempty"`
	DriverPoints      map[string]float64   `json:"driverPoints"`
	DriverRacePoints  map[string]float64   `json:"driverRacePoints"`
	DriverQualiPoints map[string]float64   `json:"driverQualiPoints"`
	DriverBreakdown   map[string]Breakdown `json:"driverBreakdown"`
}
