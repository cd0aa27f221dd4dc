package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	qb "github.com/oversteer/fantasy-gp/internal/platform/querybuilder"
)

type DriverRepository struct {
	db *sqlx.DB
}

func NewDriverRepository(db *sqlx.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) ListByLeague(ctx context.Context, leagueID string) ([]driver.Driver, error) {
	query, args, err := qb.Select("*").From("drivers").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list drivers query: %w", err)
	}

	var rows []driverTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	out := make([]driver.Driver, 0, len(rows))
	for _, row := range rows {
		out = append(out, driverToDomain(row))
	}

	return out, nil
}

func (r *DriverRepository) GetByIDs(ctx context.Context, leagueID string, driverIDs []string) ([]driver.Driver, error) {
	if len(driverIDs) == 0 {
		return nil, nil
	}

	values := make([]any, 0, len(driverIDs))
	for _, id := range driverIDs {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From("drivers").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.In("public_id", values),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get drivers by ids query: %w", err)
	}

	var rows []driverTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get drivers by ids: %w", err)
	}

	out := make([]driver.Driver, 0, len(rows))
	for _, row := range rows {
		out = append(out, driverToDomain(row))
	}

	return out, nil
}

func (r *DriverRepository) ListConstructorsByLeague(ctx context.Context, leagueID string) ([]driver.Constructor, error) {
	query, args, err := qb.Select("*").From("constructors").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list constructors query: %w", err)
	}

	var rows []constructorTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list constructors: %w", err)
	}

	out := make([]driver.Constructor, 0, len(rows))
	for _, row := range rows {
		out = append(out, driver.Constructor{
			ID:       row.PublicID,
			LeagueID: row.LeagueID,
			Name:     row.Name,
			Color:    row.Color,
		})
	}

	return out, nil
}

func driverToDomain(row driverTableModel) driver.Driver {
	return driver.Driver{
		ID:            row.PublicID,
		LeagueID:      row.LeagueID,
		ConstructorID: row.ConstructorID,
		Name:          row.Name,
		Number:        row.Number,
		Price:         row.Price,
		SeasonPoints:  row.SeasonPoints,
		ImageURL:      row.ImageURL,
	}
}
