package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	qb "github.com/oversteer/fantasy-gp/internal/platform/querybuilder"
)

type RulesRepository struct {
	db *sqlx.DB
}

func NewRulesRepository(db *sqlx.DB) *RulesRepository {
	return &RulesRepository{db: db}
}

func (r *RulesRepository) GetByLeague(ctx context.Context, leagueID string) (rules.RuleSet, bool, error) {
	query, args, err := qb.Select("*").From("rule_sets").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return rules.RuleSet{}, false, fmt.Errorf("build get rule set query: %w", err)
	}

	var row ruleSetTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return rules.RuleSet{}, false, nil
		}
		return rules.RuleSet{}, false, fmt.Errorf("get rule set: %w", err)
	}

	rs, err := ruleSetToDomain(row)
	if err != nil {
		return rules.RuleSet{}, false, err
	}
	return rs, true, nil
}

func (r *RulesRepository) Upsert(ctx context.Context, rs rules.RuleSet) error {
	racePoints, err := sonic.Marshal(rs.RacePoints)
	if err != nil {
		return fmt.Errorf("encode race points table: %w", err)
	}
	sprintPoints, err := sonic.Marshal(rs.SprintPoints)
	if err != nil {
		return fmt.Errorf("encode sprint points table: %w", err)
	}
	multipliers, err := sonic.Marshal(rs.ConstructorMultipliers)
	if err != nil {
		return fmt.Errorf("encode constructor multipliers: %w", err)
	}

	insertModel := ruleSetInsertModel{
		LeagueID:               rs.LeagueID,
		RacePoints:             racePoints,
		SprintPoints:           sprintPoints,
		PoleBonus:              rs.PoleBonus,
		SprintPoleBonus:        rs.SprintPoleBonus,
		Q3Bonus:                rs.Q3Bonus,
		Q2Bonus:                rs.Q2Bonus,
		Q1Malus:                rs.Q1Malus,
		GridPenaltyMalus:       rs.GridPenaltyMalus,
		DNFMalus:               rs.DNFMalus,
		LastPlaceMalus:         rs.LastPlaceMalus,
		TeammateBeatBonus:      rs.TeammateBeatBonus,
		TeammateLostMalus:      rs.TeammateLostMalus,
		TeammateBeatDNFBonus:   rs.TeammateBeatDNFBonus,
		OvertakeTop10Delta:     rs.OvertakeTop10Delta,
		OvertakeOutsideDelta:   rs.OvertakeOutsideDelta,
		CaptainMultiplier:      rs.CaptainMultiplier,
		ConstructorMultipliers: multipliers,
	}
	query, args, err := qb.InsertModel("rule_sets", insertModel, `ON CONFLICT (league_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    race_points = EXCLUDED.race_points,
    sprint_points = EXCLUDED.sprint_points,
    pole_bonus = EXCLUDED.pole_bonus,
    sprint_pole_bonus = EXCLUDED.sprint_pole_bonus,
    q3_bonus = EXCLUDED.q3_bonus,
    q2_bonus = EXCLUDED.q2_bonus,
    q1_malus = EXCLUDED.q1_malus,
    grid_penalty_malus = EXCLUDED.grid_penalty_malus,
    dnf_malus = EXCLUDED.dnf_malus,
    last_place_malus = EXCLUDED.last_place_malus,
    teammate_beat_bonus = EXCLUDED.teammate_beat_bonus,
    teammate_lost_malus = EXCLUDED.teammate_lost_malus,
    teammate_beat_dnf_bonus = EXCLUDED.teammate_beat_dnf_bonus,
    overtake_top10_delta = EXCLUDED.overtake_top10_delta,
    overtake_outside_delta = EXCLUDED.overtake_outside_delta,
    captain_multiplier = EXCLUDED.captain_multiplier,
    constructor_multipliers = EXCLUDED.constructor_multipliers,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert rule set query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert rule set: %w", err)
	}
	return nil
}

func ruleSetToDomain(row ruleSetTableModel) (rules.RuleSet, error) {
	rs := rules.RuleSet{
		LeagueID:             row.LeagueID,
		PoleBonus:            row.PoleBonus,
		SprintPoleBonus:      row.SprintPoleBonus,
		Q3Bonus:              row.Q3Bonus,
		Q2Bonus:              row.Q2Bonus,
		Q1Malus:              row.Q1Malus,
		GridPenaltyMalus:     row.GridPenaltyMalus,
		DNFMalus:             row.DNFMalus,
		LastPlaceMalus:       row.LastPlaceMalus,
		TeammateBeatBonus:    row.TeammateBeatBonus,
		TeammateLostMalus:    row.TeammateLostMalus,
		TeammateBeatDNFBonus: row.TeammateBeatDNFBonus,
		OvertakeTop10Delta:   row.OvertakeTop10Delta,
		OvertakeOutsideDelta: row.OvertakeOutsideDelta,
		CaptainMultiplier:    row.CaptainMultiplier,
	}

	if len(row.RacePoints) > 0 {
		if err := sonic.Unmarshal(row.RacePoints, &rs.RacePoints); err != nil {
			return rules.RuleSet{}, fmt.Errorf("decode race points table: %w", err)
		}
	}
	if len(row.SprintPoints) > 0 {
		if err := sonic.Unmarshal(row.SprintPoints, &rs.SprintPoints); err != nil {
			return rules.RuleSet{}, fmt.Errorf("decode sprint points table: %w", err)
		}
	}
	if len(row.ConstructorMultipliers) > 0 {
		if err := sonic.Unmarshal(row.ConstructorMultipliers, &rs.ConstructorMultipliers); err != nil {
			return rules.RuleSet{}, fmt.Errorf("decode constructor multipliers: %w", err)
		}
	}

	return rs, nil
}
