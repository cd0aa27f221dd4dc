package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
	"github.com/oversteer/fantasy-gp/internal/platform/id"
)

// defaultStartingBudget is the credit allowance a fresh team starts with.
const defaultStartingBudget int64 = 1000

type CreateTeamInput struct {
	UserID   string
	LeagueID string
	Name     string
}

type TeamService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	idGen      id.Generator
	now        func() time.Time
}

func NewTeamService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	idGen id.Generator,
) *TeamService {
	return &TeamService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// Create opens a new empty team for a user in a league. One team per user
// per league; a second create returns the existing team unchanged.
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.Name = strings.TrimSpace(input.Name)

	if input.UserID == "" {
		return team.Team{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if input.LeagueID == "" {
		return team.Team{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	if _, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID); err != nil {
		return team.Team{}, fmt.Errorf("get league by id: %w", err)
	} else if !exists {
		return team.Team{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
	}

	existing, exists, err := s.teamRepo.GetByUserAndLeague(ctx, input.UserID, input.LeagueID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by user and league: %w", err)
	}
	if exists {
		return existing, nil
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	item := team.Team{
		ID:        teamID,
		UserID:    input.UserID,
		LeagueID:  input.LeagueID,
		Name:      input.Name,
		Budget:    defaultStartingBudget,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Upsert(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("save team: %w", err)
	}

	return item, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrTeamNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (team.Team, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByUserAndLeague")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" || leagueID == "" {
		return team.Team{}, false, fmt.Errorf("%w: user_id and league_id are required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByUserAndLeague(ctx, userID, leagueID)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("get team by user and league: %w", err)
	}

	return item, exists, nil
}

func (s *TeamService) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	items, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return items, nil
}
