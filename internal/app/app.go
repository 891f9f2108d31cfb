package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/scoutschool/daily-shift/external/statsfeed"
	"github.com/scoutschool/daily-shift/internal/config"
	"github.com/scoutschool/daily-shift/internal/domain/player"
	"github.com/scoutschool/daily-shift/internal/domain/roster"
	"github.com/scoutschool/daily-shift/internal/domain/team"
	"github.com/scoutschool/daily-shift/internal/infrastructure/dataset"
	cacherepo "github.com/scoutschool/daily-shift/internal/infrastructure/repository/cache"
	"github.com/scoutschool/daily-shift/internal/infrastructure/repository/memory"
	"github.com/scoutschool/daily-shift/internal/infrastructure/repository/sqlite"
	"github.com/scoutschool/daily-shift/internal/interfaces/httpapi"
	basecache "github.com/scoutschool/daily-shift/internal/platform/cache"
	"github.com/scoutschool/daily-shift/internal/platform/id"
	"github.com/scoutschool/daily-shift/internal/platform/logging"
	"github.com/scoutschool/daily-shift/internal/platform/resilience"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

const (
	syncTimeout   = 2 * time.Minute
	warmupTimeout = 30 * time.Second
)

// NewHTTPServer assembles the full game backend: roster data from the
// dataset directory (or the built-in seed league), progression state in
// SQLite, and the HTTP surface on top. The returned cleanup closes the
// database and must run after the server stops.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.StatsFeedEnabled {
		if err := syncDataset(cfg, logger); err != nil {
			// A stale local pack is better than no server.
			logger.Warn("stats feed sync failed, serving existing dataset", "error", err)
		}
	}

	playerRepo, teamRepo, rosterRepo, err := buildRosterRepos(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open game state store: %w", err)
	}
	store := sqlite.NewStore(db, logger)
	progressRepo := sqlite.NewProgressionRepository(store, cfg.DefaultFavoriteTeam)
	dailyRepo := sqlite.NewDailyRepository(store)
	statsRepo := sqlite.NewStatsRepository(store)

	questionSvc := usecase.NewQuestionService(playerRepo, rosterRepo)
	scoringSvc := usecase.NewScoringService(rosterRepo, playerRepo)
	progressionSvc := usecase.NewProgressionService(progressRepo, teamRepo, questionSvc)
	dailySvc := usecase.NewDailyService(dailyRepo, statsRepo, questionSvc, scoringSvc)
	teamSvc := usecase.NewTeamService(teamRepo, playerRepo, rosterRepo, progressRepo)
	sessionSvc := usecase.NewSessionService(id.NewRandomGenerator(), logger)
	warmupSvc := usecase.NewWarmupService(teamRepo, questionSvc, logger)

	warmupCtx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()
	result, err := warmupSvc.Run(warmupCtx, usecase.WarmupInput{MaxWorkers: cfg.WarmupMaxWorkers})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("warmup pass: %w", err)
	}
	logger.Info("dataset warmup finished",
		"teams", result.TeamCount,
		"ready", result.ReadyCount,
		"thin", result.ThinCount,
		"failed", result.FailedCount,
		"duration_ms", result.DurationMs,
	)

	handler := httpapi.NewHandler(teamSvc, questionSvc, scoringSvc, progressionSvc, dailySvc, sessionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db.Close, nil
}

// buildRosterRepos loads the dataset pack when a directory is
// configured and falls back to the embedded seed league otherwise.
// With caching enabled every repository is wrapped in a TTL
// read-through layer.
func buildRosterRepos(cfg config.Config, logger *logging.Logger) (player.Repository, team.Repository, roster.Repository, error) {
	var (
		playerRepo player.Repository
		teamRepo   team.Repository
		rosterRepo roster.Repository
	)

	if cfg.DatasetDir != "" {
		ds, err := dataset.NewLoader().Load(cfg.DatasetDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("load dataset from %s: %w", cfg.DatasetDir, err)
		}
		logger.Info("dataset loaded", "dir", cfg.DatasetDir, "players", len(ds.Players), "structures", len(ds.Structures))
		playerRepo = memory.NewPlayerRepository(ds.Players)
		teamRepo = memory.NewTeamRepositoryFromPlayers(ds.Players)
		rosterRepo = memory.NewRosterRepository(ds.Structures)
	} else {
		logger.Info("no dataset directory configured, using seed league")
		players := memory.SeedPlayers()
		playerRepo = memory.NewPlayerRepository(players)
		teamRepo = memory.NewTeamRepositoryFromPlayers(players)
		rosterRepo = memory.NewRosterRepository(memory.SeedLineStructures())
	}

	if cfg.CacheEnabled {
		cacheStore := basecache.NewStore(cfg.CacheTTL)
		playerRepo = cacherepo.NewPlayerRepository(playerRepo, cacheStore)
		teamRepo = cacherepo.NewTeamRepository(teamRepo, cacheStore)
		rosterRepo = cacherepo.NewRosterRepository(rosterRepo, cacheStore)
	}

	return playerRepo, teamRepo, rosterRepo, nil
}

func syncDataset(cfg config.Config, logger *logging.Logger) error {
	client := statsfeed.NewClient(statsfeed.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.StatsFeedTimeout},
		BaseURL:    cfg.StatsFeedBaseURL,
		Token:      cfg.StatsFeedToken,
		Timeout:    cfg.StatsFeedTimeout,
		MaxRetries: cfg.StatsFeedMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.StatsFeedCircuitEnabled,
			FailureThreshold: cfg.StatsFeedCircuitFailureCount,
			OpenTimeout:      cfg.StatsFeedCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StatsFeedCircuitHalfOpenMaxReq,
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	result, err := client.Sync(ctx, cfg.DatasetDir)
	if err != nil {
		return err
	}
	logger.Info("stats feed sync finished", "fetched", result.Fetched, "skipped", result.Skipped)

	return nil
}
