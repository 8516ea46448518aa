package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/fantasy-draft/external/sportsdata"
	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-draft/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/scheduler"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

// APIServer is the catalog HTTP API with its optional refresh job.
type APIServer struct {
	HTTP *http.Server

	scheduler *scheduler.Scheduler
	db        *sqlx.DB
	logger    *logging.Logger
}

func NewAPIServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*APIServer, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var db *sqlx.DB
	if cfg.CatalogSource == config.CatalogSourcePostgres {
		var err error
		if db, err = OpenDB(ctx, cfg); err != nil {
			return nil, err
		}
	}

	catalog, err := newCatalog(ctx, cfg, db, logger)
	if err != nil {
		closeDB(db, logger)
		return nil, err
	}

	catalogSvc := usecase.NewCatalogService(catalog, cfg.CatalogCacheTTL, cfg.CatalogPageSize, logger.Named("catalog"))

	var refreshJob *scheduler.Scheduler
	if cfg.CatalogRefreshInterval > 0 {
		refreshJob, err = scheduler.NewScheduler(catalogSvc, scheduler.Config{
			Interval: cfg.CatalogRefreshInterval,
			Logger:   logger.Named("scheduler"),
		})
		if err != nil {
			closeDB(db, logger)
			return nil, fmt.Errorf("build catalog refresh job: %w", err)
		}
	}

	handler := httpapi.NewHandler(catalogSvc, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger.Named("http"), cfg.CORSAllowedOrigins)

	return &APIServer{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		scheduler: refreshJob,
		db:        db,
		logger:    logger,
	}, nil
}

// StartJobs starts the catalog refresh job when one is configured.
func (s *APIServer) StartJobs(ctx context.Context) error {
	if s.scheduler == nil {
		return nil
	}
	if err := s.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start catalog refresh job: %w", err)
	}
	s.logger.InfoContext(ctx, "catalog refresh job started")
	return nil
}

// Shutdown drains HTTP traffic, stops the refresh job and closes the database.
func (s *APIServer) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.HTTP.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if s.scheduler != nil {
		if err := s.scheduler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

func newCatalog(ctx context.Context, cfg config.Config, db *sqlx.DB, logger *logging.Logger) (player.Catalog, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceSportsData:
		return sportsdata.NewClient(sportsdata.ClientConfig{
			BaseURL:           cfg.SportsDataBaseURL,
			APIKey:            cfg.SportsDataAPIKey,
			Timeout:           cfg.SportsDataTimeout,
			MaxRetries:        cfg.SportsDataMaxRetries,
			RequestsPerSecond: cfg.SportsDataRequestsPerSecond,
			StatsSeason:       cfg.SportsDataStatsSeason,
			ProjectionsSeason: cfg.SportsDataProjectionSeason,
			Logger:            logger.Named("sportsdata"),
			CircuitBreaker:    cfg.SportsDataCircuit,
		}), nil
	case config.CatalogSourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres catalog requires a database connection")
		}
		if cfg.CatalogSeedOnBoot {
			if err := postgres.BootstrapSeed(ctx, db, memory.SeedPlayers(), memory.SeedNews()); err != nil {
				return nil, fmt.Errorf("seed catalog: %w", err)
			}
		}
		return postgres.NewPlayerCatalog(db), nil
	default:
		return memory.NewCatalog(memory.SeedPlayers(), memory.SeedNews()), nil
	}
}

// OpenDB connects to DB_URL through the traced sqlx driver and verifies the connection.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	if cfg.DBURL == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s: %w", redactDBURL(cfg.DBURL), err)
	}
	return db, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close database failed", "error", err)
	}
}
