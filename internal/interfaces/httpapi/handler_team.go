package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/oversteer/fantasy-gp/internal/usecase"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
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

	item, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		UserID:   req.UserID,
		LeagueID: req.LeagueID,
		Name:     req.Name,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "league_id", req.LeagueID, "user_id", req.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(ctx, item))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}

func (h *Handler) ListTeamRaceResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamRaceResults")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	items, err := h.raceSyncService.ListTeamRaceResults(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team race results failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	payload := make([]teamResultDTO, 0, len(items))
	for _, item := range items {
		payload = append(payload, teamResultToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetTeamRaceResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRaceResult")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	raceID := strings.TrimSpace(r.PathValue("raceID"))
	item, err := h.raceSyncService.GetTeamRaceResult(ctx, teamID, raceID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team race result failed", "team_id", teamID, "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamResultToDTO(ctx, item))
}
