package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	items, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	payload := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		payload = append(payload, leagueToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) ListDriversByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDriversByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	items, err := h.leagueService.ListDrivers(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list drivers failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	payload := make([]driverDTO, 0, len(items))
	for _, item := range items {
		payload = append(payload, driverToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) ListConstructorsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListConstructorsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	items, err := h.leagueService.ListConstructors(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list constructors failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	payload := make([]constructorDTO, 0, len(items))
	for _, item := range items {
		payload = append(payload, constructorToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}
