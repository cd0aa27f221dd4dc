package httpapi

import (
	"context"
	"time"

	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
	"github.com/oversteer/fantasy-gp/internal/usecase"
)

type createTeamRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	LeagueID string `json:"league_id" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
}

type tradeRequest struct {
	DriverInID  string `json:"driver_in_id" validate:"omitempty"`
	DriverOutID string `json:"driver_out_id" validate:"omitempty"`
}

type lineupRequest struct {
	CaptainID string `json:"captain_id" validate:"omitempty"`
	ReserveID string `json:"reserve_id" validate:"omitempty"`
}

type upsertRulesRequest struct {
	RacePoints             []float64          `json:"racePoints" validate:"omitempty,dive,gte=0"`
	SprintPoints           []float64          `json:"sprintPoints" validate:"omitempty,dive,gte=0"`
	PoleBonus              float64            `json:"poleBonus"`
	SprintPoleBonus        float64            `json:"sprintPoleBonus"`
	Q3Bonus                float64            `json:"q3Bonus"`
	Q2Bonus                float64            `json:"q2Bonus"`
	Q1Malus                float64            `json:"q1Malus"`
	GridPenaltyMalus       float64            `json:"gridPenaltyMalus"`
	DNFMalus               float64            `json:"dnfMalus"`
	LastPlaceMalus         float64            `json:"lastPlaceMalus"`
	TeammateBeatBonus      float64            `json:"teammateBeatBonus"`
	TeammateLostMalus      float64            `json:"teammateLostMalus"`
	TeammateBeatDNFBonus   float64            `json:"teammateBeatDnfBonus"`
	OvertakeTop10Delta     float64            `json:"overtakeTop10Delta"`
	OvertakeOutsideDelta   float64            `json:"overtakeOutsideDelta"`
	CaptainMultiplier      float64            `json:"captainMultiplier" validate:"omitempty,gt=0"`
	ConstructorMultipliers map[string]float64 `json:"constructorMultipliers" validate:"omitempty,dive,gt=0"`
}

type syncRaceRequest struct {
	RaceID string `json:"race_id" validate:"required"`
}

type leagueDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Season    int    `json:"season"`
	IsDefault bool   `json:"isDefault"`
}

type driverDTO struct {
	ID            string  `json:"id"`
	LeagueID      string  `json:"leagueId"`
	ConstructorID string  `json:"constructorId"`
	Name          string  `json:"name"`
	Number        int     `json:"number"`
	Price         int64   `json:"price"`
	SeasonPoints  float64 `json:"seasonPoints"`
	ImageURL      string  `json:"imageUrl,omitempty"`
}

type constructorDTO struct {
	ID       string `json:"id"`
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
}

type teamDTO struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	LeagueID     string   `json:"leagueId"`
	Name         string   `json:"name"`
	Budget       int64    `json:"budget"`
	DriverIDs    []string `json:"driverIds"`
	CaptainID    string   `json:"captainId,omitempty"`
	ReserveID    string   `json:"reserveId,omitempty"`
	TotalPoints  float64  `json:"totalPoints"`
	CreatedAtUTC string   `json:"created_at_utc,omitempty"`
	UpdatedAtUTC string   `json:"updated_at_utc,omitempty"`
}

type raceDTO struct {
	ID                 string `json:"id"`
	LeagueID           string `json:"leagueId"`
	Name               string `json:"name"`
	Round              int    `json:"round"`
	Circuit            string `json:"circuit,omitempty"`
	ScheduledAt        string `json:"scheduledAt,omitempty"`
	HasSprint          bool   `json:"hasSprint"`
	QualifyingAt       string `json:"qualifyingAt,omitempty"`
	SprintQualifyingAt string `json:"sprintQualifyingAt,omitempty"`
	Completed          bool   `json:"completed"`
	LockState          string `json:"lockState"`
}

type lockStateDTO struct {
	RaceID    string `json:"raceId"`
	State     string `json:"state"`
	LockAtUTC string `json:"lockAtUtc,omitempty"`
}

type standingDTO struct {
	Rank        int     `json:"rank"`
	TeamID      string  `json:"teamId"`
	TeamName    string  `json:"teamName"`
	UserID      string  `json:"userId"`
	TotalPoints float64 `json:"totalPoints"`
}

type ruleSetDTO struct {
	LeagueID               string             `json:"leagueId"`
	RacePoints             []float64          `json:"racePoints"`
	SprintPoints           []float64          `json:"sprintPoints"`
	PoleBonus              float64            `json:"poleBonus"`
	SprintPoleBonus        float64            `json:"sprintPoleBonus"`
	Q3Bonus                float64            `json:"q3Bonus"`
	Q2Bonus                float64            `json:"q2Bonus"`
	Q1Malus                float64            `json:"q1Malus"`
	GridPenaltyMalus       float64            `json:"gridPenaltyMalus"`
	DNFMalus               float64            `json:"dnfMalus"`
	LastPlaceMalus         float64            `json:"lastPlaceMalus"`
	TeammateBeatBonus      float64            `json:"teammateBeatBonus"`
	TeammateLostMalus      float64            `json:"teammateLostMalus"`
	TeammateBeatDNFBonus   float64            `json:"teammateBeatDnfBonus"`
	OvertakeTop10Delta     float64            `json:"overtakeTop10Delta"`
	OvertakeOutsideDelta   float64            `json:"overtakeOutsideDelta"`
	CaptainMultiplier      float64            `json:"captainMultiplier"`
	ConstructorMultipliers map[string]float64 `json:"constructorMultipliers"`
}

type driverScoreDTO struct {
	DriverID      string  `json:"driverId"`
	Role          string  `json:"role"`
	Multiplier    float64 `json:"multiplier"`
	BasePoints    float64 `json:"basePoints"`
	CountedPoints float64 `json:"countedPoints"`
}

type teamResultDTO struct {
	ID           string           `json:"id"`
	TeamID       string           `json:"teamId"`
	RaceID       string           `json:"raceId"`
	LeagueID     string           `json:"leagueId"`
	CaptainID    string           `json:"captainId,omitempty"`
	ReserveID    string           `json:"reserveId,omitempty"`
	TotalPoints  float64          `json:"totalPoints"`
	Drivers      []driverScoreDTO `json:"drivers"`
	CreatedAtUTC string           `json:"created_at_utc,omitempty"`
}

type syncResultDTO struct {
	RaceID       string `json:"raceId"`
	LeagueID     string `json:"leagueId"`
	TeamCount    int    `json:"teamCount"`
	DriverCount  int    `json:"driverCount"`
	Deduplicated bool   `json:"deduplicated"`
}

func leagueToDTO(ctx context.Context, v league.League) leagueDTO {
	ctx, span := startSpan(ctx, "httpapi.leagueToDTO")
	defer span.End()

	return leagueDTO{
		ID:        v.ID,
		Name:      v.Name,
		Season:    v.Season,
		IsDefault: v.IsDefault,
	}
}

func driverToDTO(ctx context.Context, v driver.Driver) driverDTO {
	ctx, span := startSpan(ctx, "httpapi.driverToDTO")
	defer span.End()

	return driverDTO{
		ID:            v.ID,
		LeagueID:      v.LeagueID,
		ConstructorID: v.ConstructorID,
		Name:          v.Name,
		Number:        v.Number,
		Price:         v.Price,
		SeasonPoints:  v.SeasonPoints,
		ImageURL:      v.ImageURL,
	}
}

func constructorToDTO(ctx context.Context, v driver.Constructor) constructorDTO {
	ctx, span := startSpan(ctx, "httpapi.constructorToDTO")
	defer span.End()

	return constructorDTO{
		ID:       v.ID,
		LeagueID: v.LeagueID,
		Name:     v.Name,
		Color:    v.Color,
	}
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:           v.ID,
		UserID:       v.UserID,
		LeagueID:     v.LeagueID,
		Name:         v.Name,
		Budget:       v.Budget,
		DriverIDs:    append([]string(nil), v.DriverIDs...),
		CaptainID:    v.CaptainID,
		ReserveID:    v.ReserveID,
		TotalPoints:  v.TotalPoints,
		CreatedAtUTC: formatOptionalTime(v.CreatedAt),
		UpdatedAtUTC: formatOptionalTime(v.UpdatedAt),
	}
}

func raceToDTO(ctx context.Context, v usecase.RaceWithLock) raceDTO {
	ctx, span := startSpan(ctx, "httpapi.raceToDTO")
	defer span.End()

	return raceDTO{
		ID:                 v.Race.ID,
		LeagueID:           v.Race.LeagueID,
		Name:               v.Race.Name,
		Round:              v.Race.Round,
		Circuit:            v.Race.Circuit,
		ScheduledAt:        formatOptionalTime(v.Race.ScheduledAt),
		HasSprint:          v.Race.HasSprint,
		QualifyingAt:       formatOptionalTime(v.Race.QualifyingAt),
		SprintQualifyingAt: formatOptionalTime(v.Race.SprintQualifyingAt),
		Completed:          v.Race.Completed,
		LockState:          string(v.LockState),
	}
}

func lockStateToDTO(ctx context.Context, raceItem race.Race, state race.LockState) lockStateDTO {
	ctx, span := startSpan(ctx, "httpapi.lockStateToDTO")
	defer span.End()

	dto := lockStateDTO{
		RaceID: raceItem.ID,
		State:  string(state),
	}
	if sessionStart := raceItem.LockSessionStart(); !sessionStart.IsZero() {
		dto.LockAtUTC = sessionStart.Add(-race.LineupLockLead).UTC().Format(time.RFC3339)
	}
	return dto
}

func standingToDTO(ctx context.Context, v usecase.StandingRow) standingDTO {
	ctx, span := startSpan(ctx, "httpapi.standingToDTO")
	defer span.End()

	return standingDTO{
		Rank:        v.Rank,
		TeamID:      v.TeamID,
		TeamName:    v.TeamName,
		UserID:      v.UserID,
		TotalPoints: v.TotalPoints,
	}
}

func ruleSetToDTO(ctx context.Context, v rules.RuleSet) ruleSetDTO {
	ctx, span := startSpan(ctx, "httpapi.ruleSetToDTO")
	defer span.End()

	return ruleSetDTO{
		LeagueID:               v.LeagueID,
		RacePoints:             append([]float64(nil), v.RacePoints...),
		SprintPoints:           append([]float64(nil), v.SprintPoints...),
		PoleBonus:              v.PoleBonus,
		SprintPoleBonus:        v.SprintPoleBonus,
		Q3Bonus:                v.Q3Bonus,
		Q2Bonus:                v.Q2Bonus,
		Q1Malus:                v.Q1Malus,
		GridPenaltyMalus:       v.GridPenaltyMalus,
		DNFMalus:               v.DNFMalus,
		LastPlaceMalus:         v.LastPlaceMalus,
		TeammateBeatBonus:      v.TeammateBeatBonus,
		TeammateLostMalus:      v.TeammateLostMalus,
		TeammateBeatDNFBonus:   v.TeammateBeatDNFBonus,
		OvertakeTop10Delta:     v.OvertakeTop10Delta,
		OvertakeOutsideDelta:   v.OvertakeOutsideDelta,
		CaptainMultiplier:      v.CaptainMultiplier,
		ConstructorMultipliers: v.ConstructorMultipliers,
	}
}

func teamResultToDTO(ctx context.Context, v scoring.TeamResult) teamResultDTO {
	ctx, span := startSpan(ctx, "httpapi.teamResultToDTO")
	defer span.End()

	drivers := make([]driverScoreDTO, 0, len(v.Drivers))
	for _, d := range v.Drivers {
		drivers = append(drivers, driverScoreDTO{
			DriverID:      d.DriverID,
			Role:          d.Role,
			Multiplier:    d.Multiplier,
			BasePoints:    d.BasePoints,
			CountedPoints: d.CountedPoints,
		})
	}

	return teamResultDTO{
		ID:           v.ID,
		TeamID:       v.TeamID,
		RaceID:       v.RaceID,
		LeagueID:     v.LeagueID,
		CaptainID:    v.CaptainID,
		ReserveID:    v.ReserveID,
		TotalPoints:  v.TotalPoints,
		Drivers:      drivers,
		CreatedAtUTC: formatOptionalTime(v.CreatedAt),
	}
}

func syncResultToDTO(ctx context.Context, v usecase.SyncRaceResult) syncResultDTO {
	ctx, span := startSpan(ctx, "httpapi.syncResultToDTO")
	defer span.End()

	return syncResultDTO{
		RaceID:       v.RaceID,
		LeagueID:     v.LeagueID,
		TeamCount:    v.TeamCount,
		DriverCount:  v.DriverCount,
		Deduplicated: v.Deduplicated,
	}
}

func formatOptionalTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
