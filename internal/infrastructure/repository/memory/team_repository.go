package memory

import (
	"context"
	"sync"

	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	for _, item := range teams {
		items[item.ID] = item
	}

	return &TeamRepository{items: items}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}

	return cloneTeam(item), true, nil
}

func (r *TeamRepository) GetByUserAndLeague(_ context.Context, userID, leagueID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.LeagueID == leagueID {
			return cloneTeam(item), true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, item := range r.items {
		if item.LeagueID == leagueID {
			out = append(out, cloneTeam(item))
		}
	}

	return out, nil
}

func (r *TeamRepository) Upsert(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = cloneTeam(t)
	return nil
}

// addPoints increments running totals after a race sync.
func (r *TeamRepository) addPoints(pointsByTeam map[string]float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for teamID, points := range pointsByTeam {
		item, ok := r.items[teamID]
		if !ok {
			continue
		}
		item.TotalPoints += points
		r.items[teamID] = item
	}
}

// cloneTeam guards the stored slice against aliasing by callers.
func cloneTeam(t team.Team) team.Team {
	out := t
	out.DriverIDs = append([]string(nil), t.DriverIDs...)
	return out
}
