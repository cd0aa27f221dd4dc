package cache

import (
	"context"
	"sort"
	"strings"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	basecache "github.com/oversteer/fantasy-gp/internal/platform/cache"
)

// Read-through decorators over the persistence repositories. Only the
// read-mostly reference data is cached; team and race rows mutate on trades,
// lineup saves, and race syncs, so they always go to the backing store.

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	key := "league:id:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type DriverRepository struct {
	next  driver.Repository
	cache *basecache.Store
}

func NewDriverRepository(next driver.Repository, cache *basecache.Store) *DriverRepository {
	return &DriverRepository{next: next, cache: cache}
}

func (r *DriverRepository) ListByLeague(ctx context.Context, leagueID string) ([]driver.Driver, error) {
	key := "driver:list:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]driver.Driver(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]driver.Driver)
	return append([]driver.Driver(nil), items...), nil
}

func (r *DriverRepository) GetByIDs(ctx context.Context, leagueID string, driverIDs []string) ([]driver.Driver, error) {
	ids := append([]string(nil), driverIDs...)
	sort.Strings(ids)
	key := "driver:ids:" + leagueID + ":" + strings.Join(ids, ",")
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, leagueID, driverIDs)
		if err != nil {
			return nil, err
		}
		return append([]driver.Driver(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]driver.Driver)
	return append([]driver.Driver(nil), items...), nil
}

func (r *DriverRepository) ListConstructorsByLeague(ctx context.Context, leagueID string) ([]driver.Constructor, error) {
	key := "constructor:list:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListConstructorsByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]driver.Constructor(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]driver.Constructor)
	return append([]driver.Constructor(nil), items...), nil
}

type RulesRepository struct {
	next  rules.Repository
	cache *basecache.Store
}

func NewRulesRepository(next rules.Repository, cache *basecache.Store) *RulesRepository {
	return &RulesRepository{next: next, cache: cache}
}

func (r *RulesRepository) GetByLeague(ctx context.Context, leagueID string) (rules.RuleSet, bool, error) {
	key := rulesKey(leagueID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedRulesByLeague{value: item, exists: exists}, nil
	})
	if err != nil {
		return rules.RuleSet{}, false, err
	}

	cached, _ := v.(cachedRulesByLeague)
	return cached.value, cached.exists, nil
}

// Upsert writes through and drops the league's cached rule set so the next
// read sees the new configuration immediately, not after the TTL.
func (r *RulesRepository) Upsert(ctx context.Context, rs rules.RuleSet) error {
	if err := r.next.Upsert(ctx, rs); err != nil {
		return err
	}
	r.cache.Delete(ctx, rulesKey(rs.LeagueID))
	return nil
}

func rulesKey(leagueID string) string {
	return "rules:league:" + leagueID
}

type cachedRulesByLeague struct {
	value  rules.RuleSet
	exists bool
}

var (
	_ league.Repository = (*LeagueRepository)(nil)
	_ driver.Repository = (*DriverRepository)(nil)
	_ rules.Repository  = (*RulesRepository)(nil)
)
