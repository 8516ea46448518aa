package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

// Refresher reloads a cached data set.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Config struct {
	Interval   time.Duration
	RunTimeout time.Duration
	Logger     *logging.Logger
}

// Scheduler runs the periodic catalog refresh job.
type Scheduler struct {
	s          gocron.Scheduler
	refresher  Refresher
	interval   time.Duration
	runTimeout time.Duration
	logger     *logging.Logger
	baseCtx    context.Context
}

func NewScheduler(refresher Refresher, cfg Config) (*Scheduler, error) {
	if refresher == nil {
		return nil, fmt.Errorf("refresher is required")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be > 0")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	runTimeout := cfg.RunTimeout
	if runTimeout <= 0 || runTimeout > cfg.Interval {
		runTimeout = cfg.Interval
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:          s,
		refresher:  refresher,
		interval:   cfg.Interval,
		runTimeout: runTimeout,
		logger:     logger,
		baseCtx:    context.Background(),
	}, nil
}

// Start registers the refresh job and starts the scheduler. The first run
// happens one interval after start; overlapping runs are rescheduled.
func (s *Scheduler) Start(ctx context.Context, opts ...gocron.JobOption) error {
	s.baseCtx = context.WithoutCancel(ctx)
	jobOpts := append([]gocron.JobOption{
		gocron.WithName("catalog-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}, opts...)

	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.runRefresh),
		jobOpts...,
	)
	if err != nil {
		return fmt.Errorf("failed to create catalog refresh job: %w", err)
	}

	s.s.Start()
	s.logger.Info("catalog refresh scheduled", "interval", s.interval.String())
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) runRefresh() {
	s.refreshCatalog(s.baseCtx)
}

func (s *Scheduler) refreshCatalog(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	started := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		s.logger.WarnContext(ctx, "catalog refresh failed", "error", err)
		return
	}
	s.logger.InfoContext(ctx, "catalog refresh finished", "duration_ms", time.Since(started).Milliseconds())
}
