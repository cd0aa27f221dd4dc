package driver

import "context"

// Repository describes driver pool persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Driver, error)
	GetByIDs(ctx context.Context, leagueID string, driverIDs []string) ([]Driver, error)
	ListConstructorsByLeague(ctx context.Context, leagueID string) ([]Constructor, error)
}
