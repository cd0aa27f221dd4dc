package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
	"github.com/oversteer/fantasy-gp/internal/platform/id"
	"github.com/oversteer/fantasy-gp/internal/platform/resilience"
)

const (
	defaultSyncTimeout     = 30 * time.Second
	defaultSyncWorkerCount = 4
)

type SyncRaceResult struct {
	RaceID       string
	LeagueID     string
	TeamCount    int
	DriverCount  int
	Deduplicated bool
}

// RaceSyncService turns official session results into persisted fantasy
// scores. One sync per race runs at a time (singleflight); everything a sync
// writes lands atomically through the scoring repository, and the whole run
// is bounded by a fail-closed timeout.
type RaceSyncService struct {
	leagueRepo  league.Repository
	raceRepo    race.Repository
	driverRepo  driver.Repository
	teamRepo    team.Repository
	rulesRepo   rules.Repository
	scoringRepo scoring.Repository
	provider    ClassificationProvider
	idGen       id.Generator

	now         func() time.Time
	syncFlight  resilience.SingleFlight
	syncTimeout time.Duration
	workerCount int
}

func NewRaceSyncService(
	leagueRepo league.Repository,
	raceRepo race.Repository,
	driverRepo driver.Repository,
	teamRepo team.Repository,
	rulesRepo rules.Repository,
	scoringRepo scoring.Repository,
	provider ClassificationProvider,
	idGen id.Generator,
) *RaceSyncService {
	return &RaceSyncService{
		leagueRepo:  leagueRepo,
		raceRepo:    raceRepo,
		driverRepo:  driverRepo,
		teamRepo:    teamRepo,
		rulesRepo:   rulesRepo,
		scoringRepo: scoringRepo,
		provider:    provider,
		idGen:       idGen,
		now:         time.Now,
		syncTimeout: defaultSyncTimeout,
		workerCount: defaultSyncWorkerCount,
	}
}

// SyncRace fetches the classification for a race and scores every team in
// its league. A race syncs exactly once: re-syncing a completed race returns
// ErrRaceAlreadyScored. Concurrent calls for the same race collapse into one
// run and share its outcome.
func (s *RaceSyncService) SyncRace(ctx context.Context, raceID string) (SyncRaceResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RaceSyncService.SyncRace")
	defer span.End()

	raceID = strings.TrimSpace(raceID)
	if raceID == "" {
		return SyncRaceResult{}, fmt.Errorf("%w: race_id is required", ErrInvalidInput)
	}
	if s.provider == nil {
		return SyncRaceResult{}, fmt.Errorf("%w: no classification provider configured", ErrDependencyUnavailable)
	}

	key := "race:sync:" + raceID
	value, err, shared := s.syncFlight.Do(key, func() (any, error) {
		runCtx, cancel := context.WithTimeout(ctx, s.syncTimeout)
		defer cancel()

		return s.syncRaceOnce(runCtx, raceID)
	})
	if err != nil {
		return SyncRaceResult{}, err
	}

	result, ok := value.(SyncRaceResult)
	if !ok {
		return SyncRaceResult{}, fmt.Errorf("unexpected sync result type %T", value)
	}
	result.Deduplicated = shared
	return result, nil
}

func (s *RaceSyncService) syncRaceOnce(ctx context.Context, raceID string) (SyncRaceResult, error) {
	raceItem, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return SyncRaceResult{}, fmt.Errorf("get race for sync: %w", err)
	}
	if !exists {
		return SyncRaceResult{}, fmt.Errorf("%w: race=%s", ErrRaceNotFound, raceID)
	}
	if raceItem.Completed {
		return SyncRaceResult{}, fmt.Errorf("%w: race=%s", ErrRaceAlreadyScored, raceID)
	}

	leagueItem, exists, err := s.leagueRepo.GetByID(ctx, raceItem.LeagueID)
	if err != nil {
		return SyncRaceResult{}, fmt.Errorf("get league for sync: %w", err)
	}
	if !exists {
		return SyncRaceResult{}, fmt.Errorf("%w: league=%s", ErrNotFound, raceItem.LeagueID)
	}

	// The provider is consulted before anything is written: a fetch failure
	// or empty classification leaves the race untouched and retryable.
	classification, err := s.provider.FetchRaceClassification(ctx, leagueItem.Season, raceItem.Round)
	if err != nil {
		return SyncRaceResult{}, fmt.Errorf("fetch race classification race=%s: %w", raceID, err)
	}
	if !classification.HasRaceData() {
		return SyncRaceResult{}, fmt.Errorf("%w: race=%s", ErrNoClassificationData, raceID)
	}

	ruleSet, err := s.loadRules(ctx, raceItem.LeagueID)
	if err != nil {
		return SyncRaceResult{}, err
	}

	drivers, err := s.driverRepo.ListByLeague(ctx, raceItem.LeagueID)
	if err != nil {
		return SyncRaceResult{}, fmt.Errorf("list drivers for sync: %w", err)
	}
	teams, err := s.teamRepo.ListByLeague(ctx, raceItem.LeagueID)
	if err != nil {
		return SyncRaceResult{}, fmt.Errorf("list teams for sync: %w", err)
	}

	weekend := scoring.Weekend{
		Grid:       classification.Grid,
		Race:       classification.Race,
		SprintGrid: classification.SprintGrid,
		Sprint:     classification.Sprint,
		HasSprint:  raceItem.HasSprint && len(classification.Sprint) > 0,
	}

	breakdowns, err := s.computeBreakdowns(drivers, weekend, ruleSet)
	if err != nil {
		return SyncRaceResult{}, err
	}

	payload := buildResultsPayload(classification, weekend.HasSprint, breakdowns)

	now := s.now().UTC()
	teamResults := make([]scoring.TeamResult, 0, len(teams))
	pointsByTeam := make(map[string]float64, len(teams))
	for _, teamItem := range teams {
		score := scoring.ScoreTeam(teamItem, breakdowns, classification.Race, ruleSet)

		resultID, err := s.idGen.NewID()
		if err != nil {
			return SyncRaceResult{}, fmt.Errorf("generate team result id: %w", err)
		}

		teamResults = append(teamResults, scoring.TeamResult{
			ID:          resultID,
			TeamID:      teamItem.ID,
			RaceID:      raceItem.ID,
			LeagueID:    raceItem.LeagueID,
			CaptainID:   teamItem.CaptainID,
			ReserveID:   teamItem.ReserveID,
			TotalPoints: score.Total,
			Drivers:     score.Drivers,
			CreatedAt:   now,
		})
		pointsByTeam[teamItem.ID] = score.Total
	}

	if err := s.scoringRepo.StoreRaceScores(ctx, scoring.StoreRaceScoresInput{
		LeagueID:     raceItem.LeagueID,
		RaceID:       raceItem.ID,
		Payload:      payload,
		TeamResults:  teamResults,
		PointsByTeam: pointsByTeam,
		DriverPoints: payload.DriverPoints,
	}); err != nil {
		return SyncRaceResult{}, fmt.Errorf("store race scores race=%s: %w", raceID, err)
	}

	return SyncRaceResult{
		RaceID:      raceItem.ID,
		LeagueID:    raceItem.LeagueID,
		TeamCount:   len(teamResults),
		DriverCount: len(breakdowns),
	}, nil
}

// computeBreakdowns scores every driver of the pool on a worker pool. The
// computation is pure, so ordering does not matter; the map assembles under
// a mutex.
func (s *RaceSyncService) computeBreakdowns(
	drivers []driver.Driver,
	weekend scoring.Weekend,
	ruleSet rules.RuleSet,
) (map[string]scoring.Breakdown, error) {
	teammateOf := driver.Teammates(drivers)
	constructorOf := driver.ConstructorByDriver(drivers)

	workerCount := s.workerCount
	if workerCount < 1 {
		workerCount = 1
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create scoring worker pool: %w", err)
	}
	defer pool.Release()

	out := make(map[string]scoring.Breakdown, len(drivers))
	var outMu sync.Mutex
	var workers sync.WaitGroup

	for _, item := range drivers {
		driverID := item.ID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			breakdown := scoring.ComputeDriverBreakdown(driverID, weekend, ruleSet, teammateOf, constructorOf)
			outMu.Lock()
			out[driverID] = breakdown
			outMu.Unlock()
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit driver scoring task: %w", err)
		}
	}
	workers.Wait()

	return out, nil
}

func (s *RaceSyncService) loadRules(ctx context.Context, leagueID string) (rules.RuleSet, error) {
	ruleSet, exists, err := s.rulesRepo.GetByLeague(ctx, leagueID)
	if err != nil {
		return rules.RuleSet{}, fmt.Errorf("get rules for sync: %w", err)
	}
	if !exists {
		ruleSet = rules.Default()
		ruleSet.LeagueID = leagueID
	}
	return rules.Normalize(ruleSet), nil
}

func buildResultsPayload(
	classification RaceClassification,
	hasSprint bool,
	breakdowns map[string]scoring.Breakdown,
) scoring.ResultsPayload {
	payload := scoring.ResultsPayload{
		Quali:             classification.Grid,
		Race:              classification.Race,
		DriverPoints:      make(map[string]float64, len(breakdowns)),
		DriverRacePoints:  make(map[string]float64, len(breakdowns)),
		DriverQualiPoints: make(map[string]float64, len(breakdowns)),
		DriverBreakdown:   breakdowns,
	}
	if hasSprint {
		payload.SprintQuali = classification.SprintGrid
		payload.Sprint = classification.Sprint
	}

	for driverID, breakdown := range breakdowns {
		payload.DriverPoints[driverID] = breakdown.Total
		payload.DriverRacePoints[driverID] = breakdown.Race
		payload.DriverQualiPoints[driverID] = breakdown.Quali
	}

	return payload
}

// GetTeamRaceResult reads one persisted team snapshot.
func (s *RaceSyncService) GetTeamRaceResult(ctx context.Context, teamID, raceID string) (scoring.TeamResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RaceSyncService.GetTeamRaceResult")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	raceID = strings.TrimSpace(raceID)
	if teamID == "" || raceID == "" {
		return scoring.TeamResult{}, fmt.Errorf("%w: team_id and race_id are required", ErrInvalidInput)
	}

	item, exists, err := s.scoringRepo.GetByTeamAndRace(ctx, teamID, raceID)
	if err != nil {
		return scoring.TeamResult{}, fmt.Errorf("get team race result: %w", err)
	}
	if !exists {
		return scoring.TeamResult{}, fmt.Errorf("%w: team=%s race=%s", ErrNotFound, teamID, raceID)
	}

	return item, nil
}

// ListTeamRaceResults reads every persisted snapshot for one team, most recent race last.
func (s *RaceSyncService) ListTeamRaceResults(ctx context.Context, teamID string) ([]scoring.TeamResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RaceSyncService.ListTeamRaceResults")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team for results: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}

	items, err := s.scoringRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team race results: %w", err)
	}

	return items, nil
}
