package app

import (
	"context"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/domain/draftlog"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/draftapi"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-draft/internal/interfaces/cli"
	idgen "github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/worker"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

const changeBufferSize = 64

// DraftClient is an interactive draft session against the catalog API.
type DraftClient struct {
	SessionID string
	Console   *cli.Console

	runner *worker.PoolRunner
	db     *sqlx.DB
}

func NewDraftClient(ctx context.Context, cfg config.Config, logger *logging.Logger, in io.Reader, out io.Writer) (*DraftClient, error) {
	if logger == nil {
		logger = logging.Default()
	}

	sessionID, err := idgen.NewUUIDGenerator().NewID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}
	logger = logger.With("session_id", sessionID)

	provider, err := draftapi.NewClient(draftapi.ClientConfig{
		BaseURL:        cfg.DraftAPIURL,
		Timeout:        cfg.DraftAPITimeout,
		PageSize:       cfg.DraftPageSize,
		Logger:         logger.Named("draftapi"),
		CircuitBreaker: cfg.DraftCircuit,
	})
	if err != nil {
		return nil, fmt.Errorf("build draft api client: %w", err)
	}

	var (
		db    *sqlx.DB
		picks draftlog.Repository = memory.NewDraftPickRepository()
	)
	if cfg.PickLogPersistent() {
		if db, err = OpenDB(ctx, cfg); err != nil {
			return nil, err
		}
		picks = postgres.NewDraftPickRepository(db)
	}

	runner, err := worker.NewPoolRunner(cfg.DraftWorkers, logger.Named("worker"))
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("build worker pool: %w", err)
	}

	changes := make(chan usecase.Change, changeBufferSize)
	board := usecase.NewDraftBoard(usecase.DraftBoardConfig{
		SessionID: sessionID,
		Provider:  provider,
		Runner:    runner,
		Picks:     picks,
		Listener:  cli.ChannelListener(changes),
		Logger:    logger.Named("board"),
	})

	return &DraftClient{
		SessionID: sessionID,
		Console:   cli.NewConsole(board, changes, in, out, cli.WithLogger(logger.Named("cli")), cli.WithSettleTimeout(cfg.DraftAPITimeout*2)),
		runner:    runner,
		db:        db,
	}, nil
}

func (d *DraftClient) Run(ctx context.Context) error {
	return d.Console.Run(ctx)
}

func (d *DraftClient) Close() error {
	d.runner.Release()
	if d.db != nil {
		if err := d.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}
	return nil
}
