package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/oversteer/fantasy-gp/internal/usecase"
)

// SetLineup replaces a team's captain and reserve picks. The lineup is the
// only surface gated by the lock window; trades stay open through it.
func (h *Handler) SetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetLineup")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req lineupRequest
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

	item, err := h.lineupService.SetLineup(ctx, usecase.SetLineupInput{
		TeamID:    teamID,
		CaptainID: req.CaptainID,
		ReserveID: req.ReserveID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "set lineup failed",
			"team_id", teamID,
			"captain_id", req.CaptainID,
			"reserve_id", req.ReserveID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}
