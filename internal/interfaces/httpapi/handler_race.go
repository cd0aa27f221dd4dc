package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListRacesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRacesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	items, err := h.raceService.ListByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list races failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	payload := make([]raceDTO, 0, len(items))
	for _, item := range items {
		payload = append(payload, raceToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}

func (h *Handler) GetRace(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRace")
	defer span.End()

	raceID := strings.TrimSpace(r.PathValue("raceID"))
	item, err := h.raceService.GetByID(ctx, raceID)
	if err != nil {
		h.logger.WarnContext(ctx, "get race failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, raceToDTO(ctx, item))
}

func (h *Handler) GetRaceLockState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRaceLockState")
	defer span.End()

	raceID := strings.TrimSpace(r.PathValue("raceID"))
	item, err := h.raceService.GetByID(ctx, raceID)
	if err != nil {
		h.logger.WarnContext(ctx, "get race lock state failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lockStateToDTO(ctx, item.Race, item.LockState))
}

func (h *Handler) GetRaceResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRaceResults")
	defer span.End()

	raceID := strings.TrimSpace(r.PathValue("raceID"))
	payload, err := h.raceService.GetResults(ctx, raceID)
	if err != nil {
		h.logger.WarnContext(ctx, "get race results failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}
