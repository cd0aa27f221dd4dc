package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
)

// RaceWithLock pairs a calendar entry with its current lineup lock state.
type RaceWithLock struct {
	Race      race.Race
	LockState race.LockState
}

type RaceService struct {
	raceRepo race.Repository
	now      func() time.Time
}

func NewRaceService(raceRepo race.Repository) *RaceService {
	return &RaceService{
		raceRepo: raceRepo,
		now:      time.Now,
	}
}

func (s *RaceService) GetByID(ctx context.Context, raceID string) (RaceWithLock, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RaceService.GetByID")
	defer span.End()

	raceID = strings.TrimSpace(raceID)
	if raceID == "" {
		return RaceWithLock{}, fmt.Errorf("%w: race_id is required", ErrInvalidInput)
	}

	item, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return RaceWithLock{}, fmt.Errorf("get race by id: %w", err)
	}
	if !exists {
		return RaceWithLock{}, fmt.Errorf("%w: race=%s", ErrRaceNotFound, raceID)
	}

	return RaceWithLock{
		Race:      item,
		LockState: race.LineupLockState(item, s.now().UTC()),
	}, nil
}

// ListByLeague returns the league calendar in round order with the lock
// state evaluated once per call.
func (s *RaceService) ListByLeague(ctx context.Context, leagueID string) ([]RaceWithLock, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RaceService.ListByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	items, err := s.raceRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list races by league: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Round < items[j].Round
	})

	now := s.now().UTC()
	out := make([]RaceWithLock, 0, len(items))
	for _, item := range items {
		out = append(out, RaceWithLock{
			Race:      item,
			LockState: race.LineupLockState(item, now),
		})
	}

	return out, nil
}

// GetResults returns the persisted results document of a completed race.
func (s *RaceService) GetResults(ctx context.Context, raceID string) (scoring.ResultsPayload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RaceService.GetResults")
	defer span.End()

	raceID = strings.TrimSpace(raceID)
	if raceID == "" {
		return scoring.ResultsPayload{}, fmt.Errorf("%w: race_id is required", ErrInvalidInput)
	}

	item, exists, err := s.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		return scoring.ResultsPayload{}, fmt.Errorf("get race for results: %w", err)
	}
	if !exists {
		return scoring.ResultsPayload{}, fmt.Errorf("%w: race=%s", ErrRaceNotFound, raceID)
	}
	if !item.Completed || item.Results == nil {
		return scoring.ResultsPayload{}, fmt.Errorf("%w: race=%s", ErrNoClassificationData, raceID)
	}

	return *item.Results, nil
}
