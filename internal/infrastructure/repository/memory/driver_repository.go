package memory

import (
	"context"
	"sync"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
)

type DriverRepository struct {
	mu                   sync.RWMutex
	driversByLeague      map[string][]driver.Driver
	constructorsByLeague map[string][]driver.Constructor
}

func NewDriverRepository(drivers []driver.Driver, constructors []driver.Constructor) *DriverRepository {
	driversByLeague := make(map[string][]driver.Driver)
	for _, item := range drivers {
		driversByLeague[item.LeagueID] = append(driversByLeague[item.LeagueID], item)
	}

	constructorsByLeague := make(map[string][]driver.Constructor)
	for _, item := range constructors {
		constructorsByLeague[item.LeagueID] = append(constructorsByLeague[item.LeagueID], item)
	}

	return &DriverRepository{
		driversByLeague:      driversByLeague,
		constructorsByLeague: constructorsByLeague,
	}
}

func (r *DriverRepository) ListByLeague(_ context.Context, leagueID string) ([]driver.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.driversByLeague[leagueID]
	out := make([]driver.Driver, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}

func (r *DriverRepository) GetByIDs(_ context.Context, leagueID string, driverIDs []string) ([]driver.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(driverIDs))
	for _, id := range driverIDs {
		wanted[id] = struct{}{}
	}

	out := make([]driver.Driver, 0, len(driverIDs))
	for _, item := range r.driversByLeague[leagueID] {
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

// addSeasonPoints increments running driver totals after a race sync.
func (r *DriverRepository) addSeasonPoints(leagueID string, pointsByDriver map[string]float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.driversByLeague[leagueID]
	for i, item := range rows {
		if points, ok := pointsByDriver[item.ID]; ok {
			rows[i].SeasonPoints = item.SeasonPoints + points
		}
	}
}

func (r *DriverRepository) ListConstructorsByLeague(_ context.Context, leagueID string) ([]driver.Constructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.constructorsByLeague[leagueID]
	out := make([]driver.Constructor, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}
