package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/oversteer/fantasy-gp/internal/infrastructure/repository/memory"
)

func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (public_id, name, season, is_default)
VALUES (:public_id, :name, :season, :is_default)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":  l.ID,
			"name":       l.Name,
			"season":     l.Season,
			"is_default": l.IsDefault,
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, c := range memory.SeedConstructors() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO constructors (public_id, league_public_id, name, color)
VALUES (:public_id, :league_public_id, :name, :color)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        c.ID,
			"league_public_id": c.LeagueID,
			"name":             c.Name,
			"color":            c.Color,
		})
		if err != nil {
			return fmt.Errorf("bind seed constructor %s query: %w", c.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed constructor %s: %w", c.ID, err)
		}
	}

	for _, d := range memory.SeedDrivers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO drivers (public_id, league_public_id, constructor_public_id, name, number, price)
VALUES (:public_id, :league_public_id, :constructor_public_id, :name, :number, :price)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             d.ID,
			"league_public_id":      d.LeagueID,
			"constructor_public_id": d.ConstructorID,
			"name":                  d.Name,
			"number":                d.Number,
			"price":                 d.Price,
		})
		if err != nil {
			return fmt.Errorf("bind seed driver %s query: %w", d.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed driver %s: %w", d.ID, err)
		}
	}

	for _, item := range memory.SeedRaces() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO races (public_id, league_public_id, name, round, circuit, scheduled_at, has_sprint, qualifying_at, sprint_qualifying_at)
VALUES (:public_id, :league_public_id, :name, :round, :circuit, :scheduled_at, :has_sprint, :qualifying_at, :sprint_qualifying_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":            item.ID,
			"league_public_id":     item.LeagueID,
			"name":                 item.Name,
			"round":                item.Round,
			"circuit":              item.Circuit,
			"scheduled_at":         nullableUnix(&item.ScheduledAt),
			"has_sprint":           item.HasSprint,
			"qualifying_at":        nullableUnix(&item.QualifyingAt),
			"sprint_qualifying_at": nullableUnix(&item.SprintQualifyingAt),
		})
		if err != nil {
			return fmt.Errorf("bind seed race %s query: %w", item.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed race %s: %w", item.ID, err)
		}
	}

	for _, rs := range memory.SeedRules() {
		racePoints, err := sonic.Marshal(rs.RacePoints)
		if err != nil {
			return fmt.Errorf("encode seed race points: %w", err)
		}
		sprintPoints, err := sonic.Marshal(rs.SprintPoints)
		if err != nil {
			return fmt.Errorf("encode seed sprint points: %w", err)
		}
		multipliers, err := sonic.Marshal(rs.ConstructorMultipliers)
		if err != nil {
			return fmt.Errorf("encode seed constructor multipliers: %w", err)
		}

		sqlQuery, args, err := sqlx.Named(`
INSERT INTO rule_sets (
    league_public_id, race_points, sprint_points,
    pole_bonus, sprint_pole_bonus, q3_bonus, q2_bonus, q1_malus,
    grid_penalty_malus, dnf_malus, last_place_malus,
    teammate_beat_bonus, teammate_lost_malus, teammate_beat_dnf_bonus,
    overtake_top10_delta, overtake_outside_delta,
    captain_multiplier, constructor_multipliers
)
VALUES (
    :league_public_id, :race_points, :sprint_points,
    :pole_bonus, :sprint_pole_bonus, :q3_bonus, :q2_bonus, :q1_malus,
    :grid_penalty_malus, :dnf_malus, :last_place_malus,
    :teammate_beat_bonus, :teammate_lost_malus, :teammate_beat_dnf_bonus,
    :overtake_top10_delta, :overtake_outside_delta,
    :captain_multiplier, :constructor_multipliers
)
ON CONFLICT (league_public_id) DO NOTHING`, map[string]any{
			"league_public_id":        rs.LeagueID,
			"race_points":             racePoints,
			"sprint_points":           sprintPoints,
			"pole_bonus":              rs.PoleBonus,
			"sprint_pole_bonus":       rs.SprintPoleBonus,
			"q3_bonus":                rs.Q3Bonus,
			"q2_bonus":                rs.Q2Bonus,
			"q1_malus":                rs.Q1Malus,
			"grid_penalty_malus":      rs.GridPenaltyMalus,
			"dnf_malus":               rs.DNFMalus,
			"last_place_malus":        rs.LastPlaceMalus,
			"teammate_beat_bonus":     rs.TeammateBeatBonus,
			"teammate_lost_malus":     rs.TeammateLostMalus,
			"teammate_beat_dnf_bonus": rs.TeammateBeatDNFBonus,
			"overtake_top10_delta":    rs.OvertakeTop10Delta,
			"overtake_outside_delta":  rs.OvertakeOutsideDelta,
			"captain_multiplier":      rs.CaptainMultiplier,
			"constructor_multipliers": multipliers,
		})
		if err != nil {
			return fmt.Errorf("bind seed rule set %s query: %w", rs.LeagueID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed rule set %s: %w", rs.LeagueID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
