package rules

import "context"

// Repository describes rule set persistence needs from use cases.
type Repository interface {
	GetByLeague(ctx context.Context, leagueID string) (RuleSet, bool, error)
	Upsert(ctx context.Context, rs RuleSet) error
}
