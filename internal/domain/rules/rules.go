package rules

import "fmt"

// RuleSet holds every scoring parameter for one league. A RuleSet is
// constructed fully populated (Default or Normalize) so the scoring engine
// never applies per-field fallbacks at read time.
//
// Malus fields are stored as negative numbers and added, never subtracted.
type RuleSet struct {
	LeagueID string

	// RacePoints awards race finishing positions, index 0 = P1.
	RacePoints []float64
	// SprintPoints awards sprint finishing positions, index 0 = P1.
	SprintPoints []float64

	PoleBonus       float64
	SprintPoleBonus float64
	Q3Bonus         float64
	Q2Bonus         float64
	Q1Malus         float64

	// GridPenaltyMalus is league configuration for grid-drop penalties.
	// It needs penalty data from the results provider before the engine
	// can apply it, so it is carried as data only for now.
	GridPenaltyMalus float64

	DNFMalus       float64
	LastPlaceMalus float64

	TeammateBeatBonus    float64
	TeammateLostMalus    float64
	TeammateBeatDNFBonus float64

	// Per-position overtake deltas, split at the P10 boundary.
	OvertakeTop10Delta   float64
	OvertakeOutsideDelta float64

	CaptainMultiplier float64

	// ConstructorMultipliers scales every point component earned by a
	// constructor's drivers. Missing entries mean 1.0.
	ConstructorMultipliers map[string]float64
}

// Default returns the stock rule set used when a league has no override.
func Default() RuleSet {
	return RuleSet{
		RacePoints:   []float64{25, 18, 15, 12, 10, 8, 6, 4, 2, 1},
		SprintPoints: []float64{8, 7, 6, 5, 4, 3, 2, 1},

		PoleBonus:       3,
		SprintPoleBonus: 1,
		Q3Bonus:         2,
		Q2Bonus:         1,
		Q1Malus:         -2,

		GridPenaltyMalus: -3,

		DNFMalus:       -5,
		LastPlaceMalus: -2,

		TeammateBeatBonus:    2,
		TeammateLostMalus:    -2,
		TeammateBeatDNFBonus: 1,

		OvertakeTop10Delta:   1,
		OvertakeOutsideDelta: 0.5,

		CaptainMultiplier:      1.5,
		ConstructorMultipliers: map[string]float64{},
	}
}

// Normalize fills unset fields from Default so downstream code can rely on
// a complete value. League-specific overrides survive untouched.
func Normalize(rs RuleSet) RuleSet {
	def := Default()

	if len(rs.RacePoints) == 0 {
		rs.RacePoints = def.RacePoints
	}
	if len(rs.SprintPoints) == 0 {
		rs.SprintPoints = def.SprintPoints
	}
	if rs.PoleBonus == 0 {
		rs.PoleBonus = def.PoleBonus
	}
	if rs.SprintPoleBonus == 0 {
		rs.SprintPoleBonus = def.SprintPoleBonus
	}
	if rs.Q3Bonus == 0 {
		rs.Q3Bonus = def.Q3Bonus
	}
	if rs.Q2Bonus == 0 {
		rs.Q2Bonus = def.Q2Bonus
	}
	if rs.Q1Malus == 0 {
		rs.Q1Malus = def.Q1Malus
	}
	if rs.GridPenaltyMalus == 0 {
		rs.GridPenaltyMalus = def.GridPenaltyMalus
	}
	if rs.DNFMalus == 0 {
		rs.DNFMalus = def.DNFMalus
	}
	if rs.LastPlaceMalus == 0 {
		rs.LastPlaceMalus = def.LastPlaceMalus
	}
	if rs.TeammateBeatBonus == 0 {
		rs.TeammateBeatBonus = def.TeammateBeatBonus
	}
	if rs.TeammateLostMalus == 0 {
		rs.TeammateLostMalus = def.TeammateLostMalus
	}
	if rs.TeammateBeatDNFBonus == 0 {
		rs.TeammateBeatDNFBonus = def.TeammateBeatDNFBonus
	}
	if rs.OvertakeTop10Delta == 0 {
		rs.OvertakeTop10Delta = def.OvertakeTop10Delta
	}
	if rs.OvertakeOutsideDelta == 0 {
		rs.OvertakeOutsideDelta = def.OvertakeOutsideDelta
	}
	if rs.CaptainMultiplier == 0 {
		rs.CaptainMultiplier = def.CaptainMultiplier
	}
	if rs.ConstructorMultipliers == nil {
		rs.ConstructorMultipliers = map[string]float64{}
	}

	return rs
}

// ConstructorMultiplier returns the scaling factor for a constructor,
// defaulting to 1.0 when the league configured none.
func (rs RuleSet) ConstructorMultiplier(constructorID string) float64 {
	if m, ok := rs.ConstructorMultipliers[constructorID]; ok && m > 0 {
		return m
	}
	return 1.0
}

func (rs RuleSet) Validate() error {
	if len(rs.RacePoints) == 0 {
		return fmt.Errorf("race points table is required")
	}
	if len(rs.SprintPoints) == 0 {
		return fmt.Errorf("sprint points table is required")
	}
	if rs.CaptainMultiplier <= 0 {
		return fmt.Errorf("captain multiplier must be greater than zero")
	}
	for constructorID, m := range rs.ConstructorMultipliers {
		if m <= 0 {
			return fmt.Errorf("constructor multiplier must be greater than zero: %s", constructorID)
		}
	}

	return nil
}
