package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/oversteer/fantasy-gp/internal/domain/team"
	qb "github.com/oversteer/fantasy-gp/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get fantasy team by id query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get fantasy team by id: %w", err)
	}

	return fantasyTeamToDomain(row), true, nil
}

func (r *TeamRepository) GetByUserAndLeague(ctx context.Context, userID, leagueID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get fantasy team by user query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get fantasy team by user: %w", err)
	}

	return fantasyTeamToDomain(row), true, nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy teams query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyTeamToDomain(row))
	}

	return out, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) error {
	insertModel := fantasyTeamInsertModel{
		PublicID:    t.ID,
		UserID:      t.UserID,
		LeagueID:    t.LeagueID,
		Name:        t.Name,
		Budget:      t.Budget,
		DriverIDs:   pq.StringArray(t.DriverIDs),
		CaptainID:   t.CaptainID,
		ReserveID:   t.ReserveID,
		TotalPoints: t.TotalPoints,
	}
	query, args, err := qb.InsertModel("fantasy_teams", insertModel, `ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    budget = EXCLUDED.budget,
    driver_public_ids = EXCLUDED.driver_public_ids,
    captain_public_id = EXCLUDED.captain_public_id,
    reserve_public_id = EXCLUDED.reserve_public_id,
    total_points = EXCLUDED.total_points,
    updated_at = NOW(),
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert fantasy team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert fantasy team: %w", err)
	}
	return nil
}

func fantasyTeamToDomain(row fantasyTeamTableModel) team.Team {
	return team.Team{
		ID:          row.PublicID,
		UserID:      row.UserID,
		LeagueID:    row.LeagueID,
		Name:        row.Name,
		Budget:      row.Budget,
		DriverIDs:   append([]string(nil), row.DriverIDs...),
		CaptainID:   row.CaptainID,
		ReserveID:   row.ReserveID,
		TotalPoints: row.TotalPoints,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
