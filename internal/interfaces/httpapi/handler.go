package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/oversteer/fantasy-gp/internal/platform/logging"
	"github.com/oversteer/fantasy-gp/internal/usecase"
)

type Handler struct {
	leagueService    *usecase.LeagueService
	teamService      *usecase.TeamService
	marketService    *usecase.MarketService
	lineupService    *usecase.LineupService
	raceService      *usecase.RaceService
	standingsService *usecase.StandingsService
	rulesService     *usecase.RulesService
	raceSyncService  *usecase.RaceSyncService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	marketService *usecase.MarketService,
	lineupService *usecase.LineupService,
	raceService *usecase.RaceService,
	standingsService *usecase.StandingsService,
	rulesService *usecase.RulesService,
	raceSyncService *usecase.RaceSyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		teamService:      teamService,
		marketService:    marketService,
		lineupService:    lineupService,
		raceService:      raceService,
		standingsService: standingsService,
		rulesService:     rulesService,
		raceSyncService:  raceSyncService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
