package scoring

import (
	"testing"

	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

func fullTeam() team.Team {
	return team.Team{
		ID:        "t1",
		UserID:    "u1",
		LeagueID:  "l1",
		DriverIDs: []string{"d1", "d2", "d3", "d4", "d5"},
		CaptainID: "d1",
		ReserveID: "d5",
	}
}

func breakdownsFor(totals map[string]float64) map[string]Breakdown {
	out := make(map[string]Breakdown, len(totals))
	for id, total := range totals {
		out[id] = Breakdown{Total: total}
	}
	return out
}

func TestScoreTeam_ReserveBenchedWhenAllStartersClassified(t *testing.T) {
	t.Parallel()

	rs := rules.Default()
	breakdowns := breakdownsFor(map[string]float64{
		"d1": 10, "d2": 8, "d3": 6, "d4": 4, "d5": 12,
	})
	classification := map[string]int{"d1": 1, "d2": 3, "d3": 5, "d4": 8}

	got := ScoreTeam(fullTeam(), breakdowns, classification, rs)

	// 10*1.5 + 8 + 6 + 4, reserve zeroed out.
	if got.Total != 33 {
		t.Fatalf("unexpected team total: got=%v want=33", got.Total)
	}

	byID := make(map[string]DriverScore, len(got.Drivers))
	for _, ds := range got.Drivers {
		byID[ds.DriverID] = ds
	}
	if byID["d1"].Role != RoleCaptain || byID["d1"].Multiplier != rs.CaptainMultiplier {
		t.Fatalf("unexpected captain score: %+v", byID["d1"])
	}
	if byID["d5"].Role != RoleReserve || byID["d5"].Multiplier != 0 || byID["d5"].CountedPoints != 0 {
		t.Fatalf("benched reserve must count zero: %+v", byID["d5"])
	}
	if byID["d5"].BasePoints != 12 {
		t.Fatalf("benched reserve keeps its base points: %+v", byID["d5"])
	}
}

func TestScoreTeam_ReserveActivatesOnStarterDNF(t *testing.T) {
	t.Parallel()

	rs := rules.Default()
	breakdowns := breakdownsFor(map[string]float64{
		"d1": 10, "d2": 8, "d3": 6, "d4": 4, "d5": 12,
	})
	// d3 has no race classification entry.
	classification := map[string]int{"d1": 1, "d2": 3, "d4": 8}

	got := ScoreTeam(fullTeam(), breakdowns, classification, rs)

	// 15 + 8 + 6 + 4 + 12; the dnf starter still counts its own (likely
	// negative-laden) breakdown, the reserve is simply unbenched.
	if got.Total != 45 {
		t.Fatalf("unexpected team total: got=%v want=45", got.Total)
	}

	for _, ds := range got.Drivers {
		if ds.DriverID == "d5" && ds.Multiplier != 1 {
			t.Fatalf("active reserve must score at full value: %+v", ds)
		}
	}
}

func TestScoreTeam_ReserveOwnDNFDoesNotActivate(t *testing.T) {
	t.Parallel()

	rs := rules.Default()
	breakdowns := breakdownsFor(map[string]float64{
		"d1": 10, "d2": 8, "d3": 6, "d4": 4, "d5": -5,
	})
	// Only the reserve is missing from the classification.
	classification := map[string]int{"d1": 1, "d2": 3, "d3": 5, "d4": 8}

	got := ScoreTeam(fullTeam(), breakdowns, classification, rs)
	if got.Total != 33 {
		t.Fatalf("reserve's own dnf must not trigger the insurance: got=%v want=33", got.Total)
	}
}

func TestScoreTeam_TotalRoundedOnceFromUnroundedSum(t *testing.T) {
	t.Parallel()

	rs := rules.Default()
	tm := team.Team{
		ID:        "t1",
		DriverIDs: []string{"d1", "d2"},
		CaptainID: "d1",
	}
	breakdowns := breakdownsFor(map[string]float64{"d1": 3.03, "d2": 3.03})
	classification := map[string]int{"d1": 1, "d2": 2}

	got := ScoreTeam(tm, breakdowns, classification, rs)

	// Captain 4.545 rounds to 4.5 on display, but the team total rounds
	// the unrounded sum 7.575 to 7.6.
	if got.Total != 7.6 {
		t.Fatalf("unexpected team total: got=%v want=7.6", got.Total)
	}
	for _, ds := range got.Drivers {
		if ds.DriverID == "d1" && ds.CountedPoints != 4.5 {
			t.Fatalf("unexpected captain counted points: got=%v want=4.5", ds.CountedPoints)
		}
	}
}

func TestScoreTeam_NoCaptainNoReserve(t *testing.T) {
	t.Parallel()

	rs := rules.Default()
	tm := team.Team{ID: "t1", DriverIDs: []string{"d1", "d2"}}
	breakdowns := breakdownsFor(map[string]float64{"d1": 5, "d2": 7})

	got := ScoreTeam(tm, breakdowns, map[string]int{"d1": 1, "d2": 2}, rs)
	if got.Total != 12 {
		t.Fatalf("unexpected team total: got=%v want=12", got.Total)
	}
	for _, ds := range got.Drivers {
		if ds.Role != RoleStarter || ds.Multiplier != 1 {
			t.Fatalf("drivers without roles are plain starters: %+v", ds)
		}
	}
}
