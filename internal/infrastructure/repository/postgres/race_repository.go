package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
	qb "github.com/oversteer/fantasy-gp/internal/platform/querybuilder"
)

type RaceRepository struct {
	db *sqlx.DB
}

func NewRaceRepository(db *sqlx.DB) *RaceRepository {
	return &RaceRepository{db: db}
}

func (r *RaceRepository) GetByID(ctx context.Context, raceID string) (race.Race, bool, error) {
	query, args, err := qb.Select("*").From("races").
		Where(
			qb.Eq("public_id", raceID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return race.Race{}, false, fmt.Errorf("build get race by id query: %w", err)
	}

	var row raceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return race.Race{}, false, nil
		}
		return race.Race{}, false, fmt.Errorf("get race by id: %w", err)
	}

	item, err := raceToDomain(row)
	if err != nil {
		return race.Race{}, false, err
	}
	return item, true, nil
}

func (r *RaceRepository) ListByLeague(ctx context.Context, leagueID string) ([]race.Race, error) {
	query, args, err := qb.Select("*").From("races").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("round").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list races query: %w", err)
	}

	var rows []raceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list races: %w", err)
	}

	out := make([]race.Race, 0, len(rows))
	for _, row := range rows {
		item, err := raceToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *RaceRepository) Upsert(ctx context.Context, item race.Race) error {
	insertModel := raceInsertModel{
		PublicID:           item.ID,
		LeagueID:           item.LeagueID,
		Name:               item.Name,
		Round:              item.Round,
		Circuit:            item.Circuit,
		ScheduledAt:        nullableUnix(&item.ScheduledAt),
		HasSprint:          item.HasSprint,
		QualifyingAt:       nullableUnix(&item.QualifyingAt),
		SprintQualifyingAt: nullableUnix(&item.SprintQualifyingAt),
		Completed:          item.Completed,
	}
	query, args, err := qb.InsertModel("races", insertModel, `ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    round = EXCLUDED.round,
    circuit = EXCLUDED.circuit,
    scheduled_at = EXCLUDED.scheduled_at,
    has_sprint = EXCLUDED.has_sprint,
    qualifying_at = EXCLUDED.qualifying_at,
    sprint_qualifying_at = EXCLUDED.sprint_qualifying_at,
    completed = EXCLUDED.completed,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert race query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert race: %w", err)
	}
	return nil
}

func raceToDomain(row raceTableModel) (race.Race, error) {
	item := race.Race{
		ID:                 row.PublicID,
		LeagueID:           row.LeagueID,
		Name:               row.Name,
		Round:              row.Round,
		Circuit:            row.Circuit,
		ScheduledAt:        nullUnixToTime(row.ScheduledAt),
		HasSprint:          row.HasSprint,
		QualifyingAt:       nullUnixToTime(row.QualifyingAt),
		SprintQualifyingAt: nullUnixToTime(row.SprintQualifyingAt),
		Completed:          row.Completed,
	}

	if len(row.Results) > 0 {
		var payload scoring.ResultsPayload
		if err := sonic.Unmarshal(row.Results, &payload); err != nil {
			return race.Race{}, fmt.Errorf("decode race results payload: %w", err)
		}
		item.Results = &payload
	}

	return item, nil
}
