package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListStandingsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandingsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	items, err := h.standingsService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	payload := make([]standingDTO, 0, len(items))
	for _, item := range items {
		payload = append(payload, standingToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}
