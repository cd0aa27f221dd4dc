package scoring

import (
	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
)

const (
	RoleStarter = "starter"
	RoleCaptain = "captain"
	RoleReserve = "reserve"
)

// DriverScore is one driver's contribution inside a team snapshot.
type DriverScore struct {
	DriverID      string  `json:"driverId"`
	Role          string  `json:"role"`
	Multiplier    float64 `json:"multiplier"`
	BasePoints    float64 `json:"basePoints"`
	CountedPoints float64 `json:"countedPoints"`
}

// TeamScore is the scored lineup for one team and one race.
type TeamScore struct {
	TeamID  string
	Total   float64
	Drivers []DriverScore
}

// ScoreTeam applies the role multipliers to a team's driver breakdowns.
// Exactly one multiplier applies per driver, reserve taking precedence over
// captain: the reserve scores at full value only when a non-reserve
// teammate has no race classification entry, and is benched (zero)
// otherwise. raceClassification is the race-session map; sprint results do
// not trigger the reserve insurance.
//
// Per-driver counted values are rounded independently, so their displayed
// sum may drift from the rounded team total by up to 0.1 per driver. That
// is expected, not a bug.
func ScoreTeam(t team.Team, breakdowns map[string]Breakdown, raceClassification map[string]int, rs rules.RuleSet) TeamScore {
	starterDNF := false
	for _, id := range t.DriverIDs {
		if id == t.ReserveID {
			continue
		}
		if _, classified := raceClassification[id]; !classified {
			starterDNF = true
			break
		}
	}

	out := TeamScore{TeamID: t.ID, Drivers: make([]DriverScore, 0, len(t.DriverIDs))}

	total := 0.0
	for _, id := range t.DriverIDs {
		base := breakdowns[id].Total

		role := RoleStarter
		multiplier := 1.0
		switch {
		case id == t.ReserveID:
			role = RoleReserve
			if !starterDNF {
				multiplier = 0
			}
		case id == t.CaptainID:
			role = RoleCaptain
			multiplier = rs.CaptainMultiplier
		}

		counted := base * multiplier
		total += counted

		out.Drivers = append(out.Drivers, DriverScore{
			DriverID:      id,
			Role:          role,
			Multiplier:    multiplier,
			BasePoints:    Round1(base),
			CountedPoints: Round1(counted),
		})
	}

	out.Total = Round1(total)
	return out
}
