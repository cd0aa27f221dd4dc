package scoring

import "context"

// StoreRaceScoresInput is everything one race sync produces. Implementations
// must apply it atomically: the results payload, every team snapshot, the
// race completion flag, and the running-total increments all land together
// or not at all.
type StoreRaceScoresInput struct {
	LeagueID     string
	RaceID       string
	Payload      ResultsPayload
	TeamResults  []TeamResult
	PointsByTeam map[string]float64
	DriverPoints map[string]float64
}

type Repository interface {
	GetByTeamAndRace(ctx context.Context, teamID, raceID string) (TeamResult, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]TeamResult, error)
	ListByRace(ctx context.Context, raceID string) ([]TeamResult, error)
	StoreRaceScores(ctx context.Context, input StoreRaceScoresInput) error
}
