package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/worker"
	"go.opentelemetry.io/otel/attribute"
)

type DetailStatus string

const (
	DetailNone    DetailStatus = "none"
	DetailLoading DetailStatus = "loading"
	DetailReady   DetailStatus = "ready"
	DetailFailed  DetailStatus = "failed"
)

// DetailSnapshot is a consistent read of the detail view.
type DetailSnapshot struct {
	Selected *player.Player
	Status   DetailStatus
	Detail   player.Detail
}

// PlayerDetailLoader fetches details for the selected player. Results for a
// selection that was replaced or closed are discarded.
type PlayerDetailLoader struct {
	mu       sync.Mutex
	provider PlayerProvider
	runner   worker.Runner
	listener ChangeListener
	logger   *logging.Logger

	token    uint64
	selected *player.Player
	status   DetailStatus
	detail   player.Detail
}

func NewPlayerDetailLoader(
	provider PlayerProvider,
	runner worker.Runner,
	listener ChangeListener,
	logger *logging.Logger,
) *PlayerDetailLoader {
	if logger == nil {
		logger = logging.Default()
	}
	if runner == nil {
		runner = worker.InlineRunner{}
	}

	return &PlayerDetailLoader{
		provider: provider,
		runner:   runner,
		listener: listener,
		logger:   logger,
		status:   DetailNone,
	}
}

// Select opens the detail view for p and requests its details.
func (l *PlayerDetailLoader) Select(ctx context.Context, p player.Player) {
	l.mu.Lock()
	l.token++
	token := l.token
	selected := p
	l.selected = &selected
	l.status = DetailLoading
	l.detail = player.Detail{}
	l.mu.Unlock()

	l.listener.notify(ChangeDetail)

	reqCtx := context.WithoutCancel(ctx)
	err := l.runner.Go(func() {
		detail, err := l.fetch(reqCtx, p.ID)
		l.resolve(reqCtx, token, p.ID, detail, err)
	})
	if err != nil {
		l.resolve(reqCtx, token, p.ID, player.Detail{}, fmt.Errorf("%w: schedule detail request: %v", ErrDependencyUnavailable, err))
	}
}

func (l *PlayerDetailLoader) Close() {
	l.mu.Lock()
	wasOpen := l.selected != nil
	l.closeLocked()
	l.mu.Unlock()

	if wasOpen {
		l.listener.notify(ChangeDetail)
	}
}

// CloseIf closes the view only when it shows playerID.
func (l *PlayerDetailLoader) CloseIf(playerID int64) bool {
	l.mu.Lock()
	if l.selected == nil || l.selected.ID != playerID {
		l.mu.Unlock()
		return false
	}
	l.closeLocked()
	l.mu.Unlock()

	l.listener.notify(ChangeDetail)
	return true
}

func (l *PlayerDetailLoader) closeLocked() {
	l.token++
	l.selected = nil
	l.status = DetailNone
	l.detail = player.Detail{}
}

func (l *PlayerDetailLoader) Snapshot() DetailSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := DetailSnapshot{Status: l.status, Detail: l.detail}
	if l.selected != nil {
		selected := *l.selected
		out.Selected = &selected
	}
	return out
}

func (l *PlayerDetailLoader) fetch(ctx context.Context, playerID int64) (detail player.Detail, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerDetailLoader.fetch", attribute.Int64("player_id", playerID))
	defer span.End()
	defer func() {
		if rec := recover(); rec != nil {
			detail, err = player.Detail{}, fmt.Errorf("%w: provider panicked: %v", ErrProviderFailure, rec)
			recordSpanError(span, err)
		}
	}()

	if l.provider == nil {
		return player.Detail{}, fmt.Errorf("%w: player provider is not configured", ErrDependencyUnavailable)
	}
	detail, err = l.provider.GetPlayerDetail(ctx, playerID)
	recordSpanError(span, err)
	return detail, err
}

func (l *PlayerDetailLoader) resolve(ctx context.Context, token uint64, playerID int64, detail player.Detail, err error) {
	l.mu.Lock()
	if token != l.token || l.selected == nil {
		l.mu.Unlock()
		l.logger.DebugContext(ctx, "dropping stale player detail", "player_id", playerID, "token", token)
		return
	}

	if err != nil {
		l.status = DetailFailed
		l.detail = player.EmptyDetail()
		l.mu.Unlock()

		l.logger.WarnContext(ctx, "get player detail failed", "player_id", playerID, "error", err)
		l.listener.notify(ChangeDetail)
		return
	}

	if detail.News == nil {
		detail.News = []player.News{}
	}
	l.status = DetailReady
	l.detail = detail
	l.mu.Unlock()

	l.listener.notify(ChangeDetail)
}
