package race

import "context"

// Repository describes race calendar persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, raceID string) (Race, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Race, error)
	Upsert(ctx context.Context, r Race) error
}
