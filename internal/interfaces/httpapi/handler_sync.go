package httpapi

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/oversteer/fantasy-gp/internal/usecase"
)

// RunRaceSyncJob triggers scoring for one race. The route sits behind
// RequireInternalJobToken; schedulers call it once per race after the
// checkered flag.
func (h *Handler) RunRaceSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRaceSyncJob")
	defer span.End()

	var req syncRaceRequest
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

	result, err := h.raceSyncService.SyncRace(ctx, req.RaceID)
	if err != nil {
		h.logger.WarnContext(ctx, "race sync job failed", "race_id", req.RaceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "race sync job finished",
		"race_id", result.RaceID,
		"league_id", result.LeagueID,
		"team_count", result.TeamCount,
		"driver_count", result.DriverCount,
		"deduplicated", result.Deduplicated,
	)
	writeSuccess(ctx, w, http.StatusOK, syncResultToDTO(ctx, result))
}
