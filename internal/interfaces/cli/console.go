package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draftlog"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

const (
	defaultSettleTimeout = 30 * time.Second
	settlePollInterval   = 50 * time.Millisecond
	prompt               = "draft> "
)

// Board is the draft board surface the console drives.
type Board interface {
	Load(ctx context.Context)
	SetSearchTerm(ctx context.Context, term string) bool
	SetPositionFilter(ctx context.Context, filter query.PositionFilter) (bool, error)
	SetTeamFilter(ctx context.Context, team string) bool
	RequestSort(ctx context.Context, key query.SortKey) (bool, error)
	SetScoringFormat(ctx context.Context, format scoring.Format) (bool, error)
	SetPage(ctx context.Context, page int) (bool, error)
	NextPage(ctx context.Context) (bool, error)
	PrevPage(ctx context.Context) (bool, error)
	SelectPlayer(ctx context.Context, playerID int64) error
	ClosePlayer()
	Draft(ctx context.Context, playerID int64) (player.Player, error)
	History(ctx context.Context) ([]draftlog.Pick, error)
	Snapshot() usecase.BoardSnapshot
}

// ChannelListener forwards board changes to ch without blocking the board.
func ChannelListener(ch chan<- usecase.Change) usecase.ChangeListener {
	return func(change usecase.Change) {
		select {
		case ch <- change:
		default:
		}
	}
}

type Option func(*Console)

func WithLogger(logger *logging.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSettleTimeout bounds how long a command waits for in-flight requests.
func WithSettleTimeout(timeout time.Duration) Option {
	return func(c *Console) {
		if timeout > 0 {
			c.settleTimeout = timeout
		}
	}
}

// Console is a line-oriented front end for a draft board.
type Console struct {
	board         Board
	changes       <-chan usecase.Change
	in            io.Reader
	out           io.Writer
	logger        *logging.Logger
	settleTimeout time.Duration
}

func NewConsole(board Board, changes <-chan usecase.Change, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		board:         board,
		changes:       changes,
		in:            in,
		out:           out,
		logger:        logging.Default(),
		settleTimeout: defaultSettleTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run loads the first page and executes commands until quit, EOF or ctx ends.
func (c *Console) Run(ctx context.Context) error {
	c.board.Load(ctx)
	c.write(renderList(c.waitSettled(ctx)))
	c.write(prompt)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			c.write(prompt)
			continue
		}

		quit, err := c.execute(ctx, line)
		if err != nil {
			c.logger.DebugContext(ctx, "command failed", "line", line, "error", err)
			c.write(fmt.Sprintf("error: %s\n", err.Error()))
		}
		if quit {
			return nil
		}
		c.write(prompt)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// waitSettled returns the first snapshot with no list or detail request in flight.
func (c *Console) waitSettled(ctx context.Context) usecase.BoardSnapshot {
	deadline := time.NewTimer(c.settleTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(settlePollInterval)
	defer ticker.Stop()

	for {
		snap := c.board.Snapshot()
		if snap.ListStatus != usecase.ListLoading && snap.Detail.Status != usecase.DetailLoading {
			return snap
		}

		select {
		case <-c.changes:
		case <-ticker.C:
		case <-ctx.Done():
			return snap
		case <-deadline.C:
			c.logger.WarnContext(ctx, "board did not settle", "timeout", c.settleTimeout.String())
			return snap
		}
	}
}

func (c *Console) write(text string) {
	if text == "" {
		return
	}
	_, _ = io.WriteString(c.out, text)
}
