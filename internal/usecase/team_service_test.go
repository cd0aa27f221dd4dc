package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/oversteer/fantasy-gp/internal/domain/league"
)

func TestTeamService_Create(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepository{
		byID: map[string]league.League{"l1": {ID: "l1", Name: "Grand Prix League"}},
	}
	teamRepo := newStubTeamRepository()
	service := NewTeamService(leagueRepo, teamRepo, &stubIDGenerator{})

	got, err := service.Create(context.Background(), CreateTeamInput{
		UserID:   "u1",
		LeagueID: "l1",
		Name:     "Apex",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Budget != defaultStartingBudget {
		t.Fatalf("unexpected starting budget: %d", got.Budget)
	}
	if len(got.DriverIDs) != 0 || got.CaptainID != "" || got.ReserveID != "" {
		t.Fatalf("new team must start empty: %+v", got)
	}

	// A second create for the same user and league returns the existing
	// team instead of a duplicate.
	again, err := service.Create(context.Background(), CreateTeamInput{
		UserID:   "u1",
		LeagueID: "l1",
		Name:     "Apex Mk2",
	})
	if err != nil {
		t.Fatalf("second Create error: %v", err)
	}
	if again.ID != got.ID || again.Name != "Apex" {
		t.Fatalf("duplicate create must return the existing team: %+v", again)
	}
}

func TestTeamService_Create_Validation(t *testing.T) {
	t.Parallel()

	leagueRepo := &stubLeagueRepository{
		byID: map[string]league.League{"l1": {ID: "l1", Name: "Grand Prix League"}},
	}
	service := NewTeamService(leagueRepo, newStubTeamRepository(), &stubIDGenerator{})

	tests := []struct {
		name    string
		input   CreateTeamInput
		wantErr error
	}{
		{name: "missing user", input: CreateTeamInput{LeagueID: "l1", Name: "Apex"}, wantErr: ErrInvalidInput},
		{name: "missing league", input: CreateTeamInput{UserID: "u1", Name: "Apex"}, wantErr: ErrInvalidInput},
		{name: "missing name", input: CreateTeamInput{UserID: "u1", LeagueID: "l1"}, wantErr: ErrInvalidInput},
		{name: "unknown league", input: CreateTeamInput{UserID: "u1", LeagueID: "ghost", Name: "Apex"}, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

func TestTeamService_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	service := NewTeamService(&stubLeagueRepository{}, newStubTeamRepository(), &stubIDGenerator{})

	_, err := service.GetByID(context.Background(), "ghost")
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
