package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/oversteer/fantasy-gp/internal/usecase"
)

// Trade applies one buy/sell pair to a team roster. Rejections carry the
// stable reason codes from mapError so clients can branch on them.
func (h *Handler) Trade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Trade")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req tradeRequest
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

	item, err := h.marketService.Trade(ctx, usecase.TradeInput{
		TeamID:      teamID,
		DriverInID:  req.DriverInID,
		DriverOutID: req.DriverOutID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "trade failed",
			"team_id", teamID,
			"driver_in_id", req.DriverInID,
			"driver_out_id", req.DriverOutID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(ctx, item))
}
