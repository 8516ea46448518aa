package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draftlog"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// DetailCloser closes the detail view when it shows playerID.
type DetailCloser interface {
	CloseIf(playerID int64) bool
}

// SessionSnapshot is a consistent read of a DraftSession.
type SessionSnapshot struct {
	ID     string
	Pool   []player.Player
	Team   []player.Player
	Roster roster.Roster
}

// DraftSession owns the available pool and the drafted team.
// A player is never in both at the same time.
type DraftSession struct {
	mu       sync.Mutex
	id       string
	pool     []player.Player
	team     []player.Player
	drafted  map[int64]struct{}
	detail   DetailCloser
	picks    draftlog.Repository
	listener ChangeListener
	logger   *logging.Logger
	now      func() time.Time
}

func NewDraftSession(
	sessionID string,
	detail DetailCloser,
	picks draftlog.Repository,
	listener ChangeListener,
	logger *logging.Logger,
) *DraftSession {
	if logger == nil {
		logger = logging.Default()
	}

	return &DraftSession{
		id:       sessionID,
		drafted:  make(map[int64]struct{}),
		detail:   detail,
		picks:    picks,
		listener: listener,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *DraftSession) ID() string {
	return s.id
}

// ReplacePool swaps in a freshly fetched page. Drafted players are filtered out.
func (s *DraftSession) ReplacePool(players []player.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if players == nil {
		s.pool = nil
		return
	}
	pool := make([]player.Player, 0, len(players))
	for _, p := range players {
		if _, taken := s.drafted[p.ID]; taken {
			continue
		}
		pool = append(pool, p)
	}
	s.pool = pool
}

// FindInPool returns the pool entry for playerID.
func (s *DraftSession) FindInPool(playerID int64) (player.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.pool {
		if p.ID == playerID {
			return p, true
		}
	}
	return player.Player{}, false
}

// Draft moves playerID from the pool to the end of the team. There is no undo.
func (s *DraftSession) Draft(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftSession.Draft", attribute.Int64("player_id", playerID))
	defer span.End()

	s.mu.Lock()
	idx := -1
	for i, p := range s.pool {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		err := fmt.Errorf("%w: player_id=%d", ErrPlayerNotAvailable, playerID)
		recordSpanError(span, err)
		return player.Player{}, err
	}

	picked := s.pool[idx]
	pool := make([]player.Player, 0, len(s.pool)-1)
	pool = append(pool, s.pool[:idx]...)
	pool = append(pool, s.pool[idx+1:]...)
	s.pool = pool
	s.team = append(s.team, picked)
	s.drafted[picked.ID] = struct{}{}
	pick := draftlog.Pick{
		SessionID:  s.id,
		PickNumber: len(s.team),
		PlayerID:   picked.ID,
		PlayerName: picked.Name,
		Position:   string(picked.Position),
		Team:       picked.Team,
		DraftedAt:  s.now().UTC(),
	}
	s.mu.Unlock()

	if s.detail != nil {
		s.detail.CloseIf(picked.ID)
	}
	s.recordPick(ctx, pick)
	s.listener.notify(ChangeTeam)

	return picked, nil
}

func (s *DraftSession) recordPick(ctx context.Context, pick draftlog.Pick) {
	if s.picks == nil {
		return
	}
	if err := s.picks.Append(ctx, pick); err != nil {
		s.logger.WarnContext(ctx, "record draft pick failed",
			"session_id", pick.SessionID,
			"pick_number", pick.PickNumber,
			"player_id", pick.PlayerID,
			"error", err,
		)
	}
}

// History lists the persisted picks of this session in pick order.
func (s *DraftSession) History(ctx context.Context) ([]draftlog.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftSession.History")
	defer span.End()

	if s.picks == nil {
		return nil, fmt.Errorf("%w: draft log is not configured", ErrDependencyUnavailable)
	}
	picks, err := s.picks.ListBySession(ctx, s.id)
	if err != nil {
		recordSpanError(span, err)
		return nil, fmt.Errorf("list draft picks: %w", err)
	}
	return picks, nil
}

func (s *DraftSession) Snapshot() SessionSnapshot {
	s.mu.Lock()
	pool := append([]player.Player(nil), s.pool...)
	team := append([]player.Player(nil), s.team...)
	s.mu.Unlock()

	return SessionSnapshot{
		ID:     s.id,
		Pool:   pool,
		Team:   team,
		Roster: roster.Assign(team),
	}
}
