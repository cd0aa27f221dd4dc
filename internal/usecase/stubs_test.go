package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

type stubLeagueRepository struct {
	byID map[string]league.League
}

var _ league.Repository = (*stubLeagueRepository)(nil)

func (s *stubLeagueRepository) List(ctx context.Context) ([]league.League, error) {
	out := make([]league.League, 0, len(s.byID))
	for _, item := range s.byID {
		out = append(out, item)
	}
	return out, nil
}

func (s *stubLeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	item, ok := s.byID[leagueID]
	return item, ok, nil
}

type stubDriverRepository struct {
	drivers      []driver.Driver
	constructors []driver.Constructor
}

var _ driver.Repository = (*stubDriverRepository)(nil)

func (s *stubDriverRepository) ListByLeague(ctx context.Context, leagueID string) ([]driver.Driver, error) {
	out := make([]driver.Driver, 0, len(s.drivers))
	for _, item := range s.drivers {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubDriverRepository) GetByIDs(ctx context.Context, leagueID string, driverIDs []string) ([]driver.Driver, error) {
	wanted := make(map[string]struct{}, len(driverIDs))
	for _, id := range driverIDs {
		wanted[id] = struct{}{}
	}

	out := make([]driver.Driver, 0, len(driverIDs))
	for _, item := range s.drivers {
		if item.LeagueID != leagueID {
			continue
		}
		if _, ok := wanted[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubDriverRepository) ListConstructorsByLeague(ctx context.Context, leagueID string) ([]driver.Constructor, error) {
	out := make([]driver.Constructor, 0, len(s.constructors))
	for _, item := range s.constructors {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

type stubTeamRepository struct {
	mu   sync.Mutex
	byID map[string]team.Team
}

var _ team.Repository = (*stubTeamRepository)(nil)

func newStubTeamRepository(teams ...team.Team) *stubTeamRepository {
	repo := &stubTeamRepository{byID: make(map[string]team.Team, len(teams))}
	for _, item := range teams {
		repo.byID[item.ID] = item
	}
	return repo
}

func (s *stubTeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.byID[teamID]
	return item, ok, nil
}

func (s *stubTeamRepository) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (team.Team, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.byID {
		if item.UserID == userID && item.LeagueID == leagueID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (s *stubTeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]team.Team, 0, len(s.byID))
	for _, item := range s.byID {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubTeamRepository) Upsert(ctx context.Context, t team.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[t.ID] = t
	return nil
}

type stubRaceRepository struct {
	mu   sync.Mutex
	byID map[string]race.Race
}

var _ race.Repository = (*stubRaceRepository)(nil)

func newStubRaceRepository(races ...race.Race) *stubRaceRepository {
	repo := &stubRaceRepository{byID: make(map[string]race.Race, len(races))}
	for _, item := range races {
		repo.byID[item.ID] = item
	}
	return repo
}

func (s *stubRaceRepository) GetByID(ctx context.Context, raceID string) (race.Race, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.byID[raceID]
	return item, ok, nil
}

func (s *stubRaceRepository) ListByLeague(ctx context.Context, leagueID string) ([]race.Race, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]race.Race, 0, len(s.byID))
	for _, item := range s.byID {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubRaceRepository) Upsert(ctx context.Context, r race.Race) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[r.ID] = r
	return nil
}

type stubRulesRepository struct {
	byLeague map[string]rules.RuleSet
	upserts  []rules.RuleSet
}

var _ rules.Repository = (*stubRulesRepository)(nil)

func (s *stubRulesRepository) GetByLeague(ctx context.Context, leagueID string) (rules.RuleSet, bool, error) {
	item, ok := s.byLeague[leagueID]
	return item, ok, nil
}

func (s *stubRulesRepository) Upsert(ctx context.Context, rs rules.RuleSet) error {
	if s.byLeague == nil {
		s.byLeague = make(map[string]rules.RuleSet)
	}
	s.byLeague[rs.LeagueID] = rs
	s.upserts = append(s.upserts, rs)
	return nil
}

type stubScoringRepository struct {
	mu         sync.Mutex
	byTeamRace map[string]scoring.TeamResult
	stored     []scoring.StoreRaceScoresInput
	storeErr   error
	onStore    func(input scoring.StoreRaceScoresInput)
}

var _ scoring.Repository = (*stubScoringRepository)(nil)

func (s *stubScoringRepository) GetByTeamAndRace(ctx context.Context, teamID, raceID string) (scoring.TeamResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.byTeamRace[teamID+"/"+raceID]
	return item, ok, nil
}

func (s *stubScoringRepository) ListByTeam(ctx context.Context, teamID string) ([]scoring.TeamResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scoring.TeamResult, 0)
	for _, item := range s.byTeamRace {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubScoringRepository) ListByRace(ctx context.Context, raceID string) ([]scoring.TeamResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scoring.TeamResult, 0)
	for _, item := range s.byTeamRace {
		if item.RaceID == raceID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubScoringRepository) StoreRaceScores(ctx context.Context, input scoring.StoreRaceScoresInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.storeErr != nil {
		return s.storeErr
	}
	if s.byTeamRace == nil {
		s.byTeamRace = make(map[string]scoring.TeamResult)
	}
	for _, item := range input.TeamResults {
		s.byTeamRace[item.TeamID+"/"+item.RaceID] = item
	}
	s.stored = append(s.stored, input)
	if s.onStore != nil {
		s.onStore(input)
	}
	return nil
}

type stubClassificationProvider struct {
	mu             sync.Mutex
	classification RaceClassification
	err            error
	calls          int
}

var _ ClassificationProvider = (*stubClassificationProvider)(nil)

func (s *stubClassificationProvider) FetchRaceClassification(ctx context.Context, season int, round int) (RaceClassification, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return RaceClassification{}, s.err
	}
	return s.classification, nil
}

type stubIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (s *stubIDGenerator) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("id-%d", s.next), nil
}
