package scoring

import (
	"math"

	"github.com/oversteer/fantasy-gp/internal/domain/rules"
)

// Breakdown is the per-driver point decomposition for one race weekend.
// Race and Quali are the two published subtotals, each already scaled by
// the constructor multiplier and rounded to one decimal. The component
// fields are pre-multiplier values kept for display.
type Breakdown struct {
	Position   float64 `json:"position"`
	Overtake   float64 `json:"overtake"`
	Teammate   float64 `json:"teammate"`
	DNF        float64 `json:"dnf"`
	LastPlace  float64 `json:"lastPlace"`
	Pole       float64 `json:"pole"`
	QualiStage float64 `json:"qualiStage"`

	Race  float64 `json:"race"`
	Quali float64 `json:"quali"`
	Total float64 `json:"total"`
}

// Weekend carries the sparse, 1-based position maps for one race weekend.
// A driver absent from a classification map did not finish that session.
type Weekend struct {
	Grid       map[string]int
	Race       map[string]int
	SprintGrid map[string]int
	Sprint     map[string]int
	HasSprint  bool
}

// sessionScore is the raw component sum for a single session.
type sessionScore struct {
	position  float64
	overtake  float64
	teammate  float64
	dnf       float64
	lastPlace float64
	pole      float64
	stage     float64
}

// ComputeDriverBreakdown scores one driver for a race weekend. Pure and
// deterministic: identical inputs produce identical output regardless of
// map key order. teammateOf may lack an entry when the driver's constructor
// does not field exactly two drivers; constructorOf maps driver id to
// constructor id for the multiplier lookup.
func ComputeDriverBreakdown(
	driverID string,
	weekend Weekend,
	rs rules.RuleSet,
	teammateOf map[string]string,
	constructorOf map[string]string,
) Breakdown {
	race := scoreSession(driverID, weekend.Grid, weekend.Race, rs.RacePoints, rs.PoleBonus, true, rs, teammateOf)

	var sprint sessionScore
	if weekend.HasSprint {
		sprint = scoreSession(driverID, weekend.SprintGrid, weekend.Sprint, rs.SprintPoints, rs.SprintPoleBonus, false, rs, teammateOf)
	}

	rawRace := race.position + race.overtake + race.teammate + race.dnf + race.lastPlace +
		sprint.position + sprint.overtake + sprint.teammate + sprint.dnf + sprint.lastPlace
	rawQuali := race.pole + race.stage + sprint.pole

	multiplier := rs.ConstructorMultiplier(constructorOf[driverID])

	out := Breakdown{
		Position:   Round1(race.position + sprint.position),
		Overtake:   Round1(race.overtake + sprint.overtake),
		Teammate:   Round1(race.teammate + sprint.teammate),
		DNF:        Round1(race.dnf + sprint.dnf),
		LastPlace:  Round1(race.lastPlace + sprint.lastPlace),
		Pole:       Round1(race.pole + sprint.pole),
		QualiStage: Round1(race.stage),
		Race:       Round1(rawRace * multiplier),
		Quali:      Round1(rawQuali * multiplier),
	}
	out.Total = Round1(out.Race + out.Quali)

	return out
}

// scoreSession computes the raw components for one session. The Q1/Q2/Q3
// stage bonuses only exist for the main qualifying; sprint qualifying
// grants just its own pole bonus.
func scoreSession(
	driverID string,
	grid map[string]int,
	classification map[string]int,
	pointsTable []float64,
	poleBonus float64,
	stageBonuses bool,
	rs rules.RuleSet,
	teammateOf map[string]string,
) sessionScore {
	var out sessionScore

	gridPos, hasGrid := grid[driverID]
	finishPos, finished := classification[driverID]

	if finished {
		if finishPos >= 1 && finishPos <= len(pointsTable) {
			out.position = pointsTable[finishPos-1]
		}
	} else {
		out.dnf = rs.DNFMalus
	}

	if hasGrid {
		if gridPos == 1 {
			out.pole = poleBonus
		}
		if stageBonuses {
			switch {
			case gridPos <= 10:
				out.stage = rs.Q3Bonus
			case gridPos <= 15:
				out.stage = rs.Q2Bonus
			default:
				out.stage = rs.Q1Malus
			}
		}
	}

	if hasGrid && finished {
		out.overtake = overtakePoints(gridPos, finishPos, rs)
	}

	if mateID, paired := teammateOf[driverID]; paired && finished {
		matePos, mateFinished := classification[mateID]
		switch {
		case !mateFinished:
			out.teammate = rs.TeammateBeatDNFBonus
		case finishPos < matePos:
			out.teammate = rs.TeammateBeatBonus
		default:
			out.teammate = rs.TeammateLostMalus
		}
	}

	if finished && finishPos > 10 && finishPos == maxPosition(classification) {
		out.lastPlace = rs.LastPlaceMalus
	}

	return out
}

// overtakePoints walks every position between grid and finish, crediting the
// bracket delta for each step. Crossing into the top ten is worth more per
// step than shuffling outside it; losing positions mirrors the same walk
// with the sign flipped.
func overtakePoints(gridPos, finishPos int, rs rules.RuleSet) float64 {
	if gridPos <= 0 || finishPos <= 0 || gridPos == finishPos {
		return 0
	}

	total := 0.0
	if gridPos > finishPos {
		for pos := gridPos - 1; pos >= finishPos; pos-- {
			total += stepDelta(pos, rs)
		}
		return total
	}
	for pos := gridPos + 1; pos <= finishPos; pos++ {
		total -= stepDelta(pos, rs)
	}
	return total
}

func stepDelta(pos int, rs rules.RuleSet) float64 {
	if pos <= 10 {
		return rs.OvertakeTop10Delta
	}
	return rs.OvertakeOutsideDelta
}

func maxPosition(classification map[string]int) int {
	max := 0
	for _, pos := range classification {
		if pos > max {
			max = pos
		}
	}
	return max
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Copysign(math.Floor(math.Abs(v)*10+0.5), v) / 10
}
