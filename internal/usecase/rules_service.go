package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/rules"
)

type RulesService struct {
	leagueRepo league.Repository
	rulesRepo  rules.Repository
}

func NewRulesService(leagueRepo league.Repository, rulesRepo rules.Repository) *RulesService {
	return &RulesService{
		leagueRepo: leagueRepo,
		rulesRepo:  rulesRepo,
	}
}

// GetByLeague returns the normalized rule set of a league, falling back to
// the stock rules when none is stored.
func (s *RulesService) GetByLeague(ctx context.Context, leagueID string) (rules.RuleSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RulesService.GetByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return rules.RuleSet{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	item, exists, err := s.rulesRepo.GetByLeague(ctx, leagueID)
	if err != nil {
		return rules.RuleSet{}, fmt.Errorf("get rules by league: %w", err)
	}
	if !exists {
		item = rules.Default()
		item.LeagueID = leagueID
	}

	return rules.Normalize(item), nil
}

// Upsert stores a league's rule set override. The value is normalized
// before validation so partial overrides are accepted.
func (s *RulesService) Upsert(ctx context.Context, rs rules.RuleSet) (rules.RuleSet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RulesService.Upsert")
	defer span.End()

	rs.LeagueID = strings.TrimSpace(rs.LeagueID)
	if rs.LeagueID == "" {
		return rules.RuleSet{}, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.leagueRepo.GetByID(ctx, rs.LeagueID); err != nil {
		return rules.RuleSet{}, fmt.Errorf("get league for rules: %w", err)
	} else if !exists {
		return rules.RuleSet{}, fmt.Errorf("%w: league=%s", ErrNotFound, rs.LeagueID)
	}

	rs = rules.Normalize(rs)
	if err := rs.Validate(); err != nil {
		return rules.RuleSet{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.rulesRepo.Upsert(ctx, rs); err != nil {
		return rules.RuleSet{}, fmt.Errorf("save rules: %w", err)
	}

	return rs, nil
}
