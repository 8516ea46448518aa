package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/worker"
	"go.opentelemetry.io/otel/attribute"
)

type ListStatus string

const (
	ListIdle    ListStatus = "idle"
	ListLoading ListStatus = "loading"
	ListLoaded  ListStatus = "loaded"
	ListErrored ListStatus = "errored"
)

// PoolSink receives the players of every accepted page. A nil slice clears the pool.
type PoolSink func(players []player.Player)

// QuerySnapshot is a consistent read of PlayerQueryState.
type QuerySnapshot struct {
	Params     query.Parameters
	Status     ListStatus
	TotalPages int
	Error      string
	Err        error
}

// PlayerQueryState owns the canonical list parameters and sequences list
// requests. Only the response for the latest parameters is applied.
type PlayerQueryState struct {
	mu       sync.Mutex
	provider PlayerProvider
	runner   worker.Runner
	sink     PoolSink
	listener ChangeListener
	logger   *logging.Logger

	params     query.Parameters
	status     ListStatus
	totalPages int
	errMsg     string
	lastErr    error
	token      uint64
}

func NewPlayerQueryState(
	provider PlayerProvider,
	runner worker.Runner,
	sink PoolSink,
	listener ChangeListener,
	logger *logging.Logger,
) *PlayerQueryState {
	if logger == nil {
		logger = logging.Default()
	}
	if runner == nil {
		runner = worker.InlineRunner{}
	}

	return &PlayerQueryState{
		provider: provider,
		runner:   runner,
		sink:     sink,
		listener: listener,
		logger:   logger,
		params:   query.Default(),
		status:   ListIdle,
	}
}

func (s *PlayerQueryState) Snapshot() QuerySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return QuerySnapshot{
		Params:     s.params,
		Status:     s.status,
		TotalPages: s.totalPages,
		Error:      s.errMsg,
		Err:        s.lastErr,
	}
}

// Load fetches the current parameters. It serves the first load and retries after an error.
func (s *PlayerQueryState) Load(ctx context.Context) {
	s.mu.Lock()
	token, params := s.beginLocked()
	s.mu.Unlock()

	s.listener.notify(ChangeList)
	s.dispatch(ctx, token, params)
}

func (s *PlayerQueryState) SetSearchTerm(ctx context.Context, term string) bool {
	return s.update(ctx, func(p *query.Parameters) {
		p.SearchTerm = strings.TrimSpace(term)
	})
}

func (s *PlayerQueryState) SetPositionFilter(ctx context.Context, filter query.PositionFilter) (bool, error) {
	filter = query.PositionFilter(strings.ToUpper(strings.TrimSpace(string(filter))))
	if !filter.Valid() {
		return false, fmt.Errorf("%w: unknown position filter %q", ErrInvalidInput, filter)
	}
	return s.update(ctx, func(p *query.Parameters) {
		p.PositionFilter = filter
	}), nil
}

func (s *PlayerQueryState) SetTeamFilter(ctx context.Context, team string) bool {
	return s.update(ctx, func(p *query.Parameters) {
		p.TeamFilter = strings.ToUpper(strings.TrimSpace(team))
	})
}

// RequestSort applies a header click on key.
func (s *PlayerQueryState) RequestSort(ctx context.Context, key query.SortKey) (bool, error) {
	if !key.Valid() {
		return false, fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, key)
	}
	return s.update(ctx, func(p *query.Parameters) {
		p.Sort = p.Sort.Next(key)
	}), nil
}

func (s *PlayerQueryState) SetScoringFormat(ctx context.Context, format scoring.Format) (bool, error) {
	if !format.Valid() {
		return false, fmt.Errorf("%w: unknown scoring format %q", ErrInvalidInput, format)
	}
	return s.update(ctx, func(p *query.Parameters) {
		p.ScoringFormat = format
	}), nil
}

// SetPage is the only control that keeps the other parameters and does not reset the page.
func (s *PlayerQueryState) SetPage(ctx context.Context, page int) (bool, error) {
	if page < 1 {
		return false, fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}

	s.mu.Lock()
	if s.params.Page == page {
		s.mu.Unlock()
		return false, nil
	}
	s.params.Page = page
	token, params := s.beginLocked()
	s.mu.Unlock()

	s.listener.notify(ChangeList)
	s.dispatch(ctx, token, params)
	return true, nil
}

// update mutates one field, resets the page and fetches when the canonical value changed.
func (s *PlayerQueryState) update(ctx context.Context, mutate func(*query.Parameters)) bool {
	s.mu.Lock()
	next := s.params
	mutate(&next)
	next.Page = 1
	if next == s.params {
		s.mu.Unlock()
		return false
	}
	s.params = next
	token, params := s.beginLocked()
	s.mu.Unlock()

	s.listener.notify(ChangeList)
	s.dispatch(ctx, token, params)
	return true
}

func (s *PlayerQueryState) beginLocked() (uint64, query.Parameters) {
	s.token++
	s.status = ListLoading
	s.errMsg = ""
	s.lastErr = nil
	return s.token, s.params
}

func (s *PlayerQueryState) dispatch(ctx context.Context, token uint64, params query.Parameters) {
	reqCtx := context.WithoutCancel(ctx)
	err := s.runner.Go(func() {
		page, err := s.fetch(reqCtx, params)
		s.resolve(reqCtx, token, page, err)
	})
	if err != nil {
		s.resolve(reqCtx, token, player.Page{}, fmt.Errorf("%w: schedule player request: %v", ErrDependencyUnavailable, err))
	}
}

// fetch turns a provider panic into an error so the request still resolves.
func (s *PlayerQueryState) fetch(ctx context.Context, params query.Parameters) (page player.Page, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerQueryState.fetch",
		attribute.Int("page", params.Page),
		attribute.String("sort_key", string(params.Sort.Key)),
	)
	defer span.End()
	defer func() {
		if rec := recover(); rec != nil {
			page, err = player.Page{}, fmt.Errorf("%w: provider panicked: %v", ErrProviderFailure, rec)
			recordSpanError(span, err)
		}
	}()

	if s.provider == nil {
		return player.Page{}, fmt.Errorf("%w: player provider is not configured", ErrDependencyUnavailable)
	}
	page, err = s.provider.ListPlayers(ctx, params)
	recordSpanError(span, err)
	return page, err
}

func (s *PlayerQueryState) resolve(ctx context.Context, token uint64, page player.Page, err error) {
	s.mu.Lock()
	if token != s.token {
		current := s.token
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "dropping stale player page", "token", token, "current_token", current)
		return
	}

	if err != nil {
		s.status = ListErrored
		s.errMsg = ErrorMessage(err)
		s.lastErr = err
		s.totalPages = 0
		if s.sink != nil {
			s.sink(nil)
		}
		s.mu.Unlock()

		s.logger.WarnContext(ctx, "list players failed", "token", token, "error", err)
		s.listener.notify(ChangeList)
		return
	}

	s.status = ListLoaded
	s.totalPages = page.TotalPages
	if s.sink != nil {
		s.sink(page.Players)
	}
	s.mu.Unlock()

	s.listener.notify(ChangeList)
}
