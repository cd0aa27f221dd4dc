package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

type StandingRow struct {
	Rank        int
	TeamID      string
	TeamName    string
	UserID      string
	TotalPoints float64
}

type StandingsService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewStandingsService(leagueRepo league.Repository, teamRepo team.Repository) *StandingsService {
	return &StandingsService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

// ListByLeague ranks every team in a league by accumulated points. Teams on
// equal points share a rank and the next rank is skipped accordingly; the
// row order within a tie is alphabetical by name so repeated reads agree.
func (s *StandingsService) ListByLeague(ctx context.Context, leagueID string) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ListByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("get league for standings: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams for standings: %w", err)
	}

	rows := make([]StandingRow, 0, len(teams))
	for _, item := range teams {
		rows = append(rows, StandingRow{
			TeamID:      item.ID,
			TeamName:    item.Name,
			UserID:      item.UserID,
			TotalPoints: item.TotalPoints,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		if rows[i].TeamName != rows[j].TeamName {
			return rows[i].TeamName < rows[j].TeamName
		}
		return rows[i].TeamID < rows[j].TeamID
	})

	for idx := range rows {
		if idx > 0 && rows[idx].TotalPoints == rows[idx-1].TotalPoints {
			rows[idx].Rank = rows[idx-1].Rank
			continue
		}
		rows[idx].Rank = idx + 1
	}

	return rows, nil
}
