package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
)

type ScoringRepository struct {
	mu         sync.RWMutex
	byTeamRace map[string]scoring.TeamResult

	teamRepo   *TeamRepository
	raceRepo   *RaceRepository
	driverRepo *DriverRepository
}

func NewScoringRepository(teamRepo *TeamRepository, raceRepo *RaceRepository, driverRepo *DriverRepository) *ScoringRepository {
	return &ScoringRepository{
		byTeamRace: make(map[string]scoring.TeamResult),
		teamRepo:   teamRepo,
		raceRepo:   raceRepo,
		driverRepo: driverRepo,
	}
}

func scoringKey(teamID, raceID string) string {
	return teamID + "/" + raceID
}

func (r *ScoringRepository) GetByTeamAndRace(_ context.Context, teamID, raceID string) (scoring.TeamResult, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byTeamRace[scoringKey(teamID, raceID)]
	return item, ok, nil
}

func (r *ScoringRepository) ListByTeam(_ context.Context, teamID string) ([]scoring.TeamResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.TeamResult, 0)
	for _, item := range r.byTeamRace {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sortResults(out)

	return out, nil
}

func (r *ScoringRepository) ListByRace(_ context.Context, raceID string) ([]scoring.TeamResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.TeamResult, 0)
	for _, item := range r.byTeamRace {
		if item.RaceID == raceID {
			out = append(out, item)
		}
	}
	sortResults(out)

	return out, nil
}

// sortResults keeps listings in sync order, oldest snapshot first.
func sortResults(items []scoring.TeamResult) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
}

// StoreRaceScores applies one race sync. The memory backend has no
// transactions; it validates everything that can fail before the first
// write, so a returned error means nothing changed.
func (r *ScoringRepository) StoreRaceScores(ctx context.Context, input scoring.StoreRaceScoresInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.raceRepo == nil || r.teamRepo == nil {
		return fmt.Errorf("scoring repository is not wired to race and team storage")
	}

	for _, item := range input.TeamResults {
		if _, exists := r.byTeamRace[scoringKey(item.TeamID, item.RaceID)]; exists {
			return fmt.Errorf("race scores already stored team=%s race=%s", item.TeamID, item.RaceID)
		}
	}

	if !r.raceRepo.SetResults(input.RaceID, input.Payload) {
		return fmt.Errorf("race not found for results: %s", input.RaceID)
	}
	r.teamRepo.addPoints(input.PointsByTeam)
	if r.driverRepo != nil {
		r.driverRepo.addSeasonPoints(input.LeagueID, input.DriverPoints)
	}

	for _, item := range input.TeamResults {
		r.byTeamRace[scoringKey(item.TeamID, item.RaceID)] = item
	}

	return nil
}
