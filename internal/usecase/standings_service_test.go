package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

func TestStandingsService_ListByLeague(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepository{
		byID: map[string]league.League{"l1": {ID: "l1", Name: "Grand Prix League"}},
	}
	teamRepo := newStubTeamRepository(
		team.Team{ID: "t1", UserID: "u1", LeagueID: "l1", Name: "Apex", TotalPoints: 120.5},
		team.Team{ID: "t2", UserID: "u2", LeagueID: "l1", Name: "Boxbox", TotalPoints: 88},
		team.Team{ID: "t3", UserID: "u3", LeagueID: "l1", Name: "Chicane", TotalPoints: 120.5},
		team.Team{ID: "t4", UserID: "u4", LeagueID: "l1", Name: "Dirty Air", TotalPoints: 40},
	)

	service := NewStandingsService(leagueRepo, teamRepo)

	got, err := service.ListByLeague(context.Background(), "l1")
	if err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}

	// Apex and Chicane tie on points and share rank 1; the next team takes
	// rank 3, not 2.
	if got[0].TeamName != "Apex" || got[0].Rank != 1 {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].TeamName != "Chicane" || got[1].Rank != 1 {
		t.Fatalf("tied team must share rank 1: %+v", got[1])
	}
	if got[2].TeamName != "Boxbox" || got[2].Rank != 3 {
		t.Fatalf("rank after a tie must skip: %+v", got[2])
	}
	if got[3].TeamName != "Dirty Air" || got[3].Rank != 4 {
		t.Fatalf("unexpected last row: %+v", got[3])
	}
}

func TestStandingsService_ListByLeague_UnknownLeague(t *testing.T) {
	t.Parallel()

	service := NewStandingsService(&stubLeagueRepository{}, newStubTeamRepository())

	_, err := service.ListByLeague(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
