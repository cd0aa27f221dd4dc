package memory

import (
	"context"
	"sync"

	"github.com/oversteer/fantasy-gp/internal/domain/rules"
)

type RulesRepository struct {
	mu    sync.RWMutex
	items map[string]rules.RuleSet
}

func NewRulesRepository(ruleSets []rules.RuleSet) *RulesRepository {
	items := make(map[string]rules.RuleSet, len(ruleSets))
	for _, item := range ruleSets {
		items[item.LeagueID] = item
	}

	return &RulesRepository{items: items}
}

func (r *RulesRepository) GetByLeague(_ context.Context, leagueID string) (rules.RuleSet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[leagueID]
	if !ok {
		return rules.RuleSet{}, false, nil
	}

	return item, true, nil
}

func (r *RulesRepository) Upsert(_ context.Context, rs rules.RuleSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[rs.LeagueID] = rs
	return nil
}
