package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/league"
)

type LeagueService struct {
	leagueRepo league.Repository
	driverRepo driver.Repository
}

func NewLeagueService(leagueRepo league.Repository, driverRepo driver.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		driverRepo: driverRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetByID(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetByID")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

// ListDrivers returns the buyable driver pool of a league.
func (s *LeagueService) ListDrivers(ctx context.Context, leagueID string) ([]driver.Driver, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListDrivers")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	items, err := s.driverRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list drivers by league: %w", err)
	}

	return items, nil
}

// ListConstructors returns the constructor entries of a league.
func (s *LeagueService) ListConstructors(ctx context.Context, leagueID string) ([]driver.Constructor, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListConstructors")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	items, err := s.driverRepo.ListConstructorsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list constructors by league: %w", err)
	}

	return items, nil
}
