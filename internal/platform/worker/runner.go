package worker

import (
	"errors"
	"fmt"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

var ErrRunnerClosed = errors.New("worker runner is closed")

// Runner executes fire-and-forget tasks off the caller's goroutine.
type Runner interface {
	Go(task func()) error
}

// PoolRunner runs tasks on a bounded ants goroutine pool.
type PoolRunner struct {
	pool   *ants.Pool
	logger *logging.Logger
}

func NewPoolRunner(size int, logger *logging.Logger) (*PoolRunner, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if size < 1 {
		size = 1
	}

	pool, err := ants.NewPool(size,
		ants.WithNonblocking(false),
		ants.WithPanicHandler(func(rec any) {
			logger.Error("worker task panicked", "panic", fmt.Sprint(rec))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &PoolRunner{pool: pool, logger: logger}, nil
}

func (r *PoolRunner) Go(task func()) error {
	if task == nil {
		return nil
	}
	if err := r.pool.Submit(task); err != nil {
		if errors.Is(err, ants.ErrPoolClosed) {
			return ErrRunnerClosed
		}
		return fmt.Errorf("submit worker task: %w", err)
	}
	return nil
}

func (r *PoolRunner) Running() int {
	return r.pool.Running()
}

func (r *PoolRunner) Release() {
	r.pool.Release()
}

// InlineRunner runs each task synchronously on the caller's goroutine.
type InlineRunner struct{}

func (InlineRunner) Go(task func()) error {
	if task != nil {
		task()
	}
	return nil
}
