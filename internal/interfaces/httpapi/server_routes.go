package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/drivers", handler.ListDriversByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/constructors", handler.ListConstructorsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/races", handler.ListRacesByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListStandingsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/rules", handler.GetRulesByLeague)
	mux.HandleFunc("PUT /v1/leagues/{leagueID}/rules", handler.UpsertRulesByLeague)
	mux.HandleFunc("GET /v1/races/{raceID}", handler.GetRace)
	mux.HandleFunc("GET /v1/races/{raceID}/lock", handler.GetRaceLockState)
	mux.HandleFunc("GET /v1/races/{raceID}/results", handler.GetRaceResults)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/results", handler.ListTeamRaceResults)
	mux.HandleFunc("GET /v1/teams/{teamID}/results/{raceID}", handler.GetTeamRaceResult)
	mux.HandleFunc("POST /v1/teams/{teamID}/trades", handler.Trade)
	mux.HandleFunc("PUT /v1/teams/{teamID}/lineup", handler.SetLineup)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync-race", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRaceSyncJob)))
}
