package memory

import (
	"context"
	"sync"

	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
)

type RaceRepository struct {
	mu    sync.RWMutex
	items map[string]race.Race
}

func NewRaceRepository(races []race.Race) *RaceRepository {
	items := make(map[string]race.Race, len(races))
	for _, item := range races {
		items[item.ID] = item
	}

	return &RaceRepository{items: items}
}

func (r *RaceRepository) GetByID(_ context.Context, raceID string) (race.Race, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[raceID]
	if !ok {
		return race.Race{}, false, nil
	}

	return cloneRace(item), true, nil
}

func (r *RaceRepository) ListByLeague(_ context.Context, leagueID string) ([]race.Race, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]race.Race, 0, len(r.items))
	for _, item := range r.items {
		if item.LeagueID == leagueID {
			out = append(out, cloneRace(item))
		}
	}

	return out, nil
}

func (r *RaceRepository) Upsert(_ context.Context, item race.Race) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneRace(item)
	return nil
}

func cloneRace(item race.Race) race.Race {
	out := item
	if item.Results != nil {
		payload := *item.Results
		out.Results = &payload
	}
	return out
}

// SetResults marks a race completed with its results document in one
// locked step. The memory scoring repository calls it inside
// StoreRaceScores to keep the sync atomic.
func (r *RaceRepository) SetResults(raceID string, payload scoring.ResultsPayload) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[raceID]
	if !ok {
		return false
	}
	item.Completed = true
	item.Results = &payload
	r.items[raceID] = item
	return true
}
