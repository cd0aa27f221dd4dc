package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

func TestMarketService_Trade(t *testing.T) {
	t.Parallel()

	teamRepo := newStubTeamRepository(team.Team{
		ID:        "t1",
		UserID:    "u1",
		LeagueID:  "l1",
		Budget:    400,
		DriverIDs: []string{"d1"},
		CaptainID: "d1",
	})
	driverRepo := &stubDriverRepository{
		drivers: []driver.Driver{
			{ID: "d1", LeagueID: "l1", ConstructorID: "red", Price: 300},
			{ID: "d2", LeagueID: "l1", ConstructorID: "red", Price: 250},
		},
	}

	service := NewMarketService(teamRepo, driverRepo)

	got, err := service.Trade(context.Background(), TradeInput{TeamID: "t1", DriverInID: "d2"})
	if err != nil {
		t.Fatalf("Trade error: %v", err)
	}
	if got.Budget != 150 || len(got.DriverIDs) != 2 {
		t.Fatalf("unexpected team after trade: %+v", got)
	}

	persisted, _, _ := teamRepo.GetByID(context.Background(), "t1")
	if persisted.Budget != 150 {
		t.Fatalf("trade result must be persisted: %+v", persisted)
	}
}

func TestMarketService_Trade_Rejections(t *testing.T) {
	t.Parallel()

	teamRepo := newStubTeamRepository(team.Team{
		ID:        "t1",
		UserID:    "u1",
		LeagueID:  "l1",
		Budget:    10,
		DriverIDs: []string{"d1"},
		CaptainID: "d1",
	})
	driverRepo := &stubDriverRepository{
		drivers: []driver.Driver{
			{ID: "d1", LeagueID: "l1", ConstructorID: "red", Price: 300},
			{ID: "d2", LeagueID: "l1", ConstructorID: "red", Price: 250},
		},
	}

	service := NewMarketService(teamRepo, driverRepo)

	tests := []struct {
		name    string
		input   TradeInput
		wantErr error
	}{
		{
			name:    "unknown team",
			input:   TradeInput{TeamID: "ghost", DriverInID: "d2"},
			wantErr: ErrTeamNotFound,
		},
		{
			name:    "sell not owned",
			input:   TradeInput{TeamID: "t1", DriverOutID: "d2"},
			wantErr: team.ErrNotOwned,
		},
		{
			name:    "buy already owned",
			input:   TradeInput{TeamID: "t1", DriverInID: "d1"},
			wantErr: team.ErrAlreadyOwned,
		},
		{
			name:    "unknown driver in",
			input:   TradeInput{TeamID: "t1", DriverInID: "ghost"},
			wantErr: team.ErrUnknownDriverIn,
		},
		{
			name:    "insufficient budget",
			input:   TradeInput{TeamID: "t1", DriverInID: "d2"},
			wantErr: team.ErrInsufficientBudget,
		},
		{
			name:    "empty trade",
			input:   TradeInput{TeamID: "t1"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Trade(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
		})
	}

	// Rejected trades leave the stored team untouched.
	persisted, _, _ := teamRepo.GetByID(context.Background(), "t1")
	if persisted.Budget != 10 || len(persisted.DriverIDs) != 1 {
		t.Fatalf("rejected trades mutated the team: %+v", persisted)
	}
}

func TestMarketService_Trade_SerializedPerTeam(t *testing.T) {
	t.Parallel()

	teamRepo := newStubTeamRepository(team.Team{
		ID:       "t1",
		UserID:   "u1",
		LeagueID: "l1",
		Budget:   300,
	})

	drivers := make([]driver.Driver, 0, 10)
	for i := 0; i < 10; i++ {
		drivers = append(drivers, driver.Driver{
			ID:            fmt.Sprintf("d%d", i),
			LeagueID:      "l1",
			ConstructorID: "red",
			Price:         100,
		})
	}
	service := NewMarketService(teamRepo, &stubDriverRepository{drivers: drivers})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		buyID := fmt.Sprintf("d%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = service.Trade(context.Background(), TradeInput{TeamID: "t1", DriverInID: buyID})
		}()
	}
	wg.Wait()

	// With the budget covering exactly three buys, serialization must stop
	// the rest; an interleaved read-modify-write would overspend.
	got, _, _ := teamRepo.GetByID(context.Background(), "t1")
	if got.Budget != 0 {
		t.Fatalf("unexpected budget after concurrent trades: %d", got.Budget)
	}
	if len(got.DriverIDs) != 3 {
		t.Fatalf("expected exactly 3 successful buys, got %d", len(got.DriverIDs))
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("team invariants broken after concurrent trades: %v", err)
	}
}
