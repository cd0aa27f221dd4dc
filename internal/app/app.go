package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/oversteer/fantasy-gp/external/ergast"
	"github.com/oversteer/fantasy-gp/internal/config"
	"github.com/oversteer/fantasy-gp/internal/domain/driver"
	"github.com/oversteer/fantasy-gp/internal/domain/league"
	"github.com/oversteer/fantasy-gp/internal/domain/race"
	"github.com/oversteer/fantasy-gp/internal/domain/rules"
	"github.com/oversteer/fantasy-gp/internal/domain/scoring"
	"github.com/oversteer/fantasy-gp/internal/domain/team"
	cacherepo "github.com/oversteer/fantasy-gp/internal/infrastructure/repository/cache"
	"github.com/oversteer/fantasy-gp/internal/infrastructure/repository/memory"
	"github.com/oversteer/fantasy-gp/internal/infrastructure/repository/postgres"
	"github.com/oversteer/fantasy-gp/internal/interfaces/httpapi"
	basecache "github.com/oversteer/fantasy-gp/internal/platform/cache"
	idgen "github.com/oversteer/fantasy-gp/internal/platform/id"
	"github.com/oversteer/fantasy-gp/internal/platform/logging"
	"github.com/oversteer/fantasy-gp/internal/platform/resilience"
	"github.com/oversteer/fantasy-gp/internal/usecase"
)

type repositories struct {
	league  league.Repository
	driver  driver.Repository
	team    team.Repository
	race    race.Repository
	rules   rules.Repository
	scoring scoring.Repository

	close func() error
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.league = cacherepo.NewLeagueRepository(repos.league, store)
		repos.driver = cacherepo.NewDriverRepository(repos.driver, store)
		repos.rules = cacherepo.NewRulesRepository(repos.rules, store)
	}

	provider := ergast.NewClient(ergast.ClientConfig{
		BaseURL:    cfg.ErgastBaseURL,
		Timeout:    cfg.ErgastTimeout,
		MaxRetries: cfg.ErgastMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ErgastCircuitEnabled,
			FailureThreshold: cfg.ErgastCircuitFailureCount,
			OpenTimeout:      cfg.ErgastCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ErgastCircuitHalfOpenMaxReq,
		},
	})

	generator := idgen.NewRandomGenerator()

	leagueSvc := usecase.NewLeagueService(repos.league, repos.driver)
	teamSvc := usecase.NewTeamService(repos.league, repos.team, generator)
	marketSvc := usecase.NewMarketService(repos.team, repos.driver)
	lineupSvc := usecase.NewLineupService(repos.team, repos.race)
	raceSvc := usecase.NewRaceService(repos.race)
	standingsSvc := usecase.NewStandingsService(repos.league, repos.team)
	rulesSvc := usecase.NewRulesService(repos.league, repos.rules)
	raceSyncSvc := usecase.NewRaceSyncService(
		repos.league,
		repos.race,
		repos.driver,
		repos.team,
		repos.rules,
		repos.scoring,
		provider,
		generator,
	)

	handler := httpapi.NewHandler(
		leagueSvc,
		teamSvc,
		marketSvc,
		lineupSvc,
		raceSvc,
		standingsSvc,
		rulesSvc,
		raceSyncSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = repos.close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.StorageBackend == config.StoragePostgres {
		db, err := openDatabase(cfg)
		if err != nil {
			return repositories{}, fmt.Errorf("open database: %w", err)
		}

		if cfg.DBSeedOnStart {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
			}
		}

		logger.Info("storage backend ready", "backend", config.StoragePostgres, "db", dbNameFromURL(cfg.DBURL))
		return repositories{
			league:  postgres.NewLeagueRepository(db),
			driver:  postgres.NewDriverRepository(db),
			team:    postgres.NewTeamRepository(db),
			race:    postgres.NewRaceRepository(db),
			rules:   postgres.NewRulesRepository(db),
			scoring: postgres.NewScoringRepository(db),
			close:   db.Close,
		}, nil
	}

	teamRepo := memory.NewTeamRepository(nil)
	raceRepo := memory.NewRaceRepository(memory.SeedRaces())
	driverRepo := memory.NewDriverRepository(memory.SeedDrivers(), memory.SeedConstructors())

	logger.Info("storage backend ready", "backend", config.StorageMemory)
	return repositories{
		league:  memory.NewLeagueRepository(memory.SeedLeagues()),
		driver:  driverRepo,
		team:    teamRepo,
		race:    raceRepo,
		rules:   memory.NewRulesRepository(memory.SeedRules()),
		scoring: memory.NewScoringRepository(teamRepo, raceRepo, driverRepo),
		close:   func() error { return nil },
	}, nil
}
