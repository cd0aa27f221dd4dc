package team

import (
	"errors"
	"testing"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
)

func marketDrivers() map[string]driver.Driver {
	return map[string]driver.Driver{
		"d1": {ID: "d1", Price: 300},
		"d2": {ID: "d2", Price: 250},
		"d3": {ID: "d3", Price: 200},
		"d4": {ID: "d4", Price: 150},
		"d5": {ID: "d5", Price: 100},
		"d6": {ID: "d6", Price: 500},
	}
}

func TestApplyTrade_Buy(t *testing.T) {
	t.Parallel()

	tm := Team{ID: "t1", Budget: 400, DriverIDs: []string{"d1"}, CaptainID: "d1"}

	got, err := ApplyTrade(tm, marketDrivers(), "d2", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Budget != 150 {
		t.Fatalf("unexpected budget: got=%d want=150", got.Budget)
	}
	if len(got.DriverIDs) != 2 || got.DriverIDs[1] != "d2" {
		t.Fatalf("bought driver must append in acquisition order: %v", got.DriverIDs)
	}
}

func TestApplyTrade_SellRefundsCurrentPrice(t *testing.T) {
	t.Parallel()

	tm := Team{ID: "t1", Budget: 0, DriverIDs: []string{"d1", "d2"}, CaptainID: "d1", ReserveID: "d2"}

	drivers := marketDrivers()
	// The driver's price moved since acquisition; the refund follows it.
	d2 := drivers["d2"]
	d2.Price = 275
	drivers["d2"] = d2

	got, err := ApplyTrade(tm, drivers, "", "d2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Budget != 275 {
		t.Fatalf("sell must refund the live price: got=%d want=275", got.Budget)
	}
	if got.ReserveID != "" {
		t.Fatalf("sanitizer must drop the reserve after the sale: %+v", got)
	}
}

func TestApplyTrade_CheckOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		team    Team
		buyID   string
		sellID  string
		wantErr error
	}{
		{
			name:    "not owned wins over already owned",
			team:    Team{Budget: 100, DriverIDs: []string{"d1"}},
			buyID:   "d1",
			sellID:  "d9",
			wantErr: ErrNotOwned,
		},
		{
			name:    "already owned wins over unknown ids",
			team:    Team{Budget: 100, DriverIDs: []string{"d1", "nope"}},
			buyID:   "d1",
			sellID:  "nope",
			wantErr: ErrAlreadyOwned,
		},
		{
			name:    "unknown sell id",
			team:    Team{Budget: 100, DriverIDs: []string{"ghost"}},
			buyID:   "d2",
			sellID:  "ghost",
			wantErr: ErrUnknownDriverOut,
		},
		{
			name:    "unknown buy id",
			team:    Team{Budget: 100, DriverIDs: []string{"d1"}},
			buyID:   "ghost",
			sellID:  "",
			wantErr: ErrUnknownDriverIn,
		},
		{
			name:    "team full wins over budget",
			team:    Team{Budget: 0, DriverIDs: []string{"d1", "d2", "d3", "d4", "d5"}},
			buyID:   "d6",
			sellID:  "",
			wantErr: ErrTeamFull,
		},
		{
			name:    "insufficient budget",
			team:    Team{Budget: 100, DriverIDs: []string{"d5"}},
			buyID:   "d6",
			sellID:  "d5",
			wantErr: ErrInsufficientBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyTrade(tt.team, marketDrivers(), tt.buyID, tt.sellID)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyTrade_SwapOnFullRoster(t *testing.T) {
	t.Parallel()

	tm := Team{
		ID:        "t1",
		Budget:    50,
		DriverIDs: []string{"d1", "d2", "d3", "d4", "d5"},
		CaptainID: "d1",
		ReserveID: "d5",
	}

	drivers := marketDrivers()
	d6 := drivers["d6"]
	d6.Price = 150
	drivers["d6"] = d6

	got, err := ApplyTrade(tm, drivers, "d6", "d5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Budget != 0 {
		t.Fatalf("unexpected budget after swap: got=%d want=0", got.Budget)
	}
	if len(got.DriverIDs) != MaxDrivers {
		t.Fatalf("swap must keep the roster full: %v", got.DriverIDs)
	}
	// The sanitizer re-assigns the reserve to the newest non-captain.
	if got.ReserveID != "d6" {
		t.Fatalf("unexpected reserve after swap: got=%q want=%q", got.ReserveID, "d6")
	}
}

func TestApplyTrade_SameDriverSwapIsNoOp(t *testing.T) {
	t.Parallel()

	tm := Team{ID: "t1", Budget: 10, DriverIDs: []string{"d1", "d2"}, CaptainID: "d1", ReserveID: "d2"}

	got, err := ApplyTrade(tm, marketDrivers(), "d2", "d2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Budget != 10 {
		t.Fatalf("same-driver swap must not touch the budget: got=%d", got.Budget)
	}
	if len(got.DriverIDs) != 2 || got.DriverIDs[0] != "d1" || got.DriverIDs[1] != "d2" {
		t.Fatalf("same-driver swap must not reorder the roster: %v", got.DriverIDs)
	}
}

func TestApplyTrade_BudgetConservation(t *testing.T) {
	t.Parallel()

	drivers := marketDrivers()
	tm := Team{ID: "t1", Budget: 1000}

	value := func(t Team) int64 {
		total := t.Budget
		for _, id := range t.DriverIDs {
			total += drivers[id].Price
		}
		return total
	}

	start := value(tm)
	steps := []struct{ buy, sell string }{
		{buy: "d1"},
		{buy: "d2"},
		{buy: "d5"},
		{buy: "d3", sell: "d5"},
		{sell: "d2"},
	}
	for _, step := range steps {
		var err error
		tm, err = ApplyTrade(tm, drivers, step.buy, step.sell)
		if err != nil {
			t.Fatalf("trade (%q,%q) failed: %v", step.buy, step.sell, err)
		}
		if got := value(tm); got != start {
			t.Fatalf("budget+roster value must be conserved: got=%d want=%d", got, start)
		}
	}
}

func TestApplyTrade_RejectedTradeLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	tm := Team{ID: "t1", Budget: 10, DriverIDs: []string{"d1"}, CaptainID: "d1"}

	_, err := ApplyTrade(tm, marketDrivers(), "d6", "")
	if !errors.Is(err, ErrInsufficientBudget) {
		t.Fatalf("unexpected error: %v", err)
	}
	if tm.Budget != 10 || len(tm.DriverIDs) != 1 {
		t.Fatalf("rejected trade mutated the input: %+v", tm)
	}
}
