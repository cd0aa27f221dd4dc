package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	"github.com/oversteer/fantasy-gp/internal/usecase"
)

func (h *Handler) GetRulesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRulesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	item, err := h.rulesService.GetByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get rules failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ruleSetToDTO(ctx, item))
}

func (h *Handler) UpsertRulesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertRulesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req upsertRulesRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.rulesService.Upsert(ctx, rules.RuleSet{
		LeagueID:               leagueID,
		RacePoints:             req.RacePoints,
		SprintPoints:           req.SprintPoints,
		PoleBonus:              req.PoleBonus,
		SprintPoleBonus:        req.SprintPoleBonus,
		Q3Bonus:                req.Q3Bonus,
		Q2Bonus:                req.Q2Bonus,
		Q1Malus:                req.Q1Malus,
		GridPenaltyMalus:       req.GridPenaltyMalus,
		DNFMalus:               req.DNFMalus,
		LastPlaceMalus:         req.LastPlaceMalus,
		TeammateBeatBonus:      req.TeammateBeatBonus,
		TeammateLostMalus:      req.TeammateLostMalus,
		TeammateBeatDNFBonus:   req.TeammateBeatDNFBonus,
		OvertakeTop10Delta:     req.OvertakeTop10Delta,
		OvertakeOutsideDelta:   req.OvertakeOutsideDelta,
		CaptainMultiplier:      req.CaptainMultiplier,
		ConstructorMultipliers: req.ConstructorMultipliers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert rules failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ruleSetToDTO(ctx, item))
}
