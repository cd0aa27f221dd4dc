package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
	qb "github.com/oversteer/fantasy-gp/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) GetByTeamAndRace(ctx context.Context, teamID, raceID string) (scoring.TeamResult, bool, error) {
	query, args, err := qb.Select("*").From("team_race_results").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.Eq("race_public_id", raceID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return scoring.TeamResult{}, false, fmt.Errorf("build get team race result query: %w", err)
	}

	var row teamRaceResultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.TeamResult{}, false, nil
		}
		return scoring.TeamResult{}, false, fmt.Errorf("get team race result: %w", err)
	}

	item, err := teamRaceResultToDomain(row)
	if err != nil {
		return scoring.TeamResult{}, false, err
	}
	return item, true, nil
}

func (r *ScoringRepository) ListByTeam(ctx context.Context, teamID string) ([]scoring.TeamResult, error) {
	return r.list(ctx, qb.Eq("team_public_id", teamID))
}

func (r *ScoringRepository) ListByRace(ctx context.Context, raceID string) ([]scoring.TeamResult, error) {
	return r.list(ctx, qb.Eq("race_public_id", raceID))
}

func (r *ScoringRepository) list(ctx context.Context, match qb.Condition) ([]scoring.TeamResult, error) {
	query, args, err := qb.Select("*").From("team_race_results").
		Where(match, qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team race results query: %w", err)
	}

	var rows []teamRaceResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team race results: %w", err)
	}

	out := make([]scoring.TeamResult, 0, len(rows))
	for _, row := range rows {
		item, err := teamRaceResultToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

// StoreRaceScores persists one race sync in a single transaction: the race
// results payload and completion flag, every team snapshot, the running team
// totals, and the running driver season points. A unique index on
// (team_public_id, race_public_id) and the completed=false guard on the race
// update make a duplicate sync roll back without touching anything.
func (r *ScoringRepository) StoreRaceScores(ctx context.Context, input scoring.StoreRaceScoresInput) error {
	payload, err := sonic.Marshal(input.Payload)
	if err != nil {
		return fmt.Errorf("encode race results payload: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx store race scores: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	raceQuery, raceArgs, err := qb.Update("races").
		Set("completed", true).
		SetExpr("results", "?", payload).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", input.RaceID),
			qb.Eq("completed", false),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build complete race query: %w", err)
	}
	res, err := tx.ExecContext(ctx, raceQuery, raceArgs...)
	if err != nil {
		return fmt.Errorf("complete race: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete race rows affected: %w", err)
	}
	if affected != 1 {
		return fmt.Errorf("race %s is missing or already scored", input.RaceID)
	}

	for _, result := range input.TeamResults {
		drivers, err := sonic.Marshal(result.Drivers)
		if err != nil {
			return fmt.Errorf("encode team race result drivers: %w", err)
		}

		insertModel := teamRaceResultInsertModel{
			PublicID:    result.ID,
			TeamID:      result.TeamID,
			RaceID:      result.RaceID,
			LeagueID:    result.LeagueID,
			CaptainID:   result.CaptainID,
			ReserveID:   result.ReserveID,
			TotalPoints: result.TotalPoints,
			Drivers:     drivers,
		}
		query, args, err := qb.InsertModel("team_race_results", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert team race result query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert team race result: %w", err)
		}
	}

	for teamID, points := range input.PointsByTeam {
		query, args, err := qb.Update("fantasy_teams").
			SetExpr("total_points", "total_points + ?", points).
			SetExpr("updated_at", "NOW()").
			Where(
				qb.Eq("public_id", teamID),
				qb.IsNull("deleted_at"),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build add team points query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("add team points: %w", err)
		}
	}

	for driverID, points := range input.DriverPoints {
		query, args, err := qb.Update("drivers").
			SetExpr("season_points", "season_points + ?", points).
			SetExpr("updated_at", "NOW()").
			Where(
				qb.Eq("public_id", driverID),
				qb.Eq("league_public_id", input.LeagueID),
				qb.IsNull("deleted_at"),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build add driver season points query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("add driver season points: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit store race scores tx: %w", err)
	}
	return nil
}

func teamRaceResultToDomain(row teamRaceResultTableModel) (scoring.TeamResult, error) {
	item := scoring.TeamResult{
		ID:          row.PublicID,
		TeamID:      row.TeamID,
		RaceID:      row.RaceID,
		LeagueID:    row.LeagueID,
		CaptainID:   row.CaptainID,
		ReserveID:   row.ReserveID,
		TotalPoints: row.TotalPoints,
		CreatedAt:   row.CreatedAt,
	}

	if len(row.Drivers) > 0 {
		if err := sonic.Unmarshal(row.Drivers, &item.Drivers); err != nil {
			return scoring.TeamResult{}, fmt.Errorf("decode team race result drivers: %w", err)
		}
	}

	return item, nil
}
