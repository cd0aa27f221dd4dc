package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

type TradeInput struct {
	TeamID      string
	DriverInID  string
	DriverOutID string
}

// MarketService applies buy/sell/swap transactions. Trades against the same
// team are serialized through a per-team mutex so two concurrent requests
// cannot both pass validation against the same stale budget.
type MarketService struct {
	teamRepo   team.Repository
	driverRepo driver.Repository
	now        func() time.Time

	mu      sync.Mutex
	teamMus map[string]*sync.Mutex
}

func NewMarketService(teamRepo team.Repository, driverRepo driver.Repository) *MarketService {
	return &MarketService{
		teamRepo:   teamRepo,
		driverRepo: driverRepo,
		now:        time.Now,
		teamMus:    make(map[string]*sync.Mutex),
	}
}

// Trade validates and persists one market transaction. Trades stay open at
// all times; the lineup lock never gates them.
func (s *MarketService) Trade(ctx context.Context, input TradeInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Trade")
	defer span.End()

	input.TeamID = strings.TrimSpace(input.TeamID)
	input.DriverInID = strings.TrimSpace(input.DriverInID)
	input.DriverOutID = strings.TrimSpace(input.DriverOutID)

	if input.TeamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}
	if input.DriverInID == "" && input.DriverOutID == "" {
		return team.Team{}, fmt.Errorf("%w: driver_in or driver_out is required", ErrInvalidInput)
	}

	mu := s.teamMutex(input.TeamID)
	mu.Lock()
	defer mu.Unlock()

	current, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team for trade: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrTeamNotFound, input.TeamID)
	}

	drivers, err := s.loadTradeDrivers(ctx, current.LeagueID, input.DriverInID, input.DriverOutID)
	if err != nil {
		return team.Team{}, err
	}

	next, err := team.ApplyTrade(current, drivers, input.DriverInID, input.DriverOutID)
	if err != nil {
		return team.Team{}, err
	}

	next.UpdatedAt = s.now().UTC()
	if err := s.teamRepo.Upsert(ctx, next); err != nil {
		return team.Team{}, fmt.Errorf("save team after trade: %w", err)
	}

	return next, nil
}

func (s *MarketService) loadTradeDrivers(ctx context.Context, leagueID, buyID, sellID string) (map[string]driver.Driver, error) {
	ids := make([]string, 0, 2)
	if buyID != "" {
		ids = append(ids, buyID)
	}
	if sellID != "" && sellID != buyID {
		ids = append(ids, sellID)
	}
	if len(ids) == 0 {
		return map[string]driver.Driver{}, nil
	}

	items, err := s.driverRepo.GetByIDs(ctx, leagueID, ids)
	if err != nil {
		return nil, fmt.Errorf("get drivers for trade: %w", err)
	}

	out := make(map[string]driver.Driver, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out, nil
}

func (s *MarketService) teamMutex(teamID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	mu, ok := s.teamMus[teamID]
	if !ok {
		mu = &sync.Mutex{}
		s.teamMus[teamID] = mu
	}
	return mu
}
