package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draftlog"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/domain/roster"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/worker"
)

type DraftBoardConfig struct {
	SessionID string
	Provider  PlayerProvider
	Runner    worker.Runner
	Picks     draftlog.Repository
	Listener  ChangeListener
	Logger    *logging.Logger
}

// PlayerRow is a pool entry with points computed for the active scoring format.
type PlayerRow struct {
	Player    player.Player
	Points    float64
	Projected float64
}

// BoardSnapshot is everything a presentation layer renders.
type BoardSnapshot struct {
	SessionID   string
	Params      query.Parameters
	ListStatus  ListStatus
	ListError   string
	TotalPages  int
	Rows        []PlayerRow
	TeamOptions []string
	SortArrows  map[query.SortKey]string
	Team        []player.Player
	Roster      roster.Roster
	Detail      DetailSnapshot
}

func (b BoardSnapshot) HasPrevPage() bool {
	return b.Params.Page > 1
}

func (b BoardSnapshot) HasNextPage() bool {
	return b.Params.Page < b.TotalPages
}

// DraftBoard wires the query state, the draft session and the detail loader
// into one facade for a presentation layer.
type DraftBoard struct {
	query   *PlayerQueryState
	session *DraftSession
	detail  *PlayerDetailLoader
}

func NewDraftBoard(cfg DraftBoardConfig) *DraftBoard {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	detail := NewPlayerDetailLoader(cfg.Provider, cfg.Runner, cfg.Listener, logger.Named("detail"))
	session := NewDraftSession(cfg.SessionID, detail, cfg.Picks, cfg.Listener, logger.Named("session"))
	queryState := NewPlayerQueryState(cfg.Provider, cfg.Runner, session.ReplacePool, cfg.Listener, logger.Named("query"))

	return &DraftBoard{
		query:   queryState,
		session: session,
		detail:  detail,
	}
}

func (b *DraftBoard) Load(ctx context.Context) {
	b.query.Load(ctx)
}

func (b *DraftBoard) SetSearchTerm(ctx context.Context, term string) bool {
	return b.query.SetSearchTerm(ctx, term)
}

func (b *DraftBoard) SetPositionFilter(ctx context.Context, filter query.PositionFilter) (bool, error) {
	return b.query.SetPositionFilter(ctx, filter)
}

func (b *DraftBoard) SetTeamFilter(ctx context.Context, team string) bool {
	return b.query.SetTeamFilter(ctx, team)
}

func (b *DraftBoard) RequestSort(ctx context.Context, key query.SortKey) (bool, error) {
	return b.query.RequestSort(ctx, key)
}

func (b *DraftBoard) SetScoringFormat(ctx context.Context, format scoring.Format) (bool, error) {
	return b.query.SetScoringFormat(ctx, format)
}

func (b *DraftBoard) SetPage(ctx context.Context, page int) (bool, error) {
	return b.query.SetPage(ctx, page)
}

// NextPage advances one page unless the last known page is showing.
func (b *DraftBoard) NextPage(ctx context.Context) (bool, error) {
	snap := b.query.Snapshot()
	if snap.Params.Page >= snap.TotalPages {
		return false, fmt.Errorf("%w: already on the last page", ErrInvalidInput)
	}
	return b.query.SetPage(ctx, snap.Params.Page+1)
}

func (b *DraftBoard) PrevPage(ctx context.Context) (bool, error) {
	snap := b.query.Snapshot()
	if snap.Params.Page <= 1 {
		return false, fmt.Errorf("%w: already on the first page", ErrInvalidInput)
	}
	return b.query.SetPage(ctx, snap.Params.Page-1)
}

// SelectPlayer opens the detail view for a pool player.
func (b *DraftBoard) SelectPlayer(ctx context.Context, playerID int64) error {
	p, ok := b.session.FindInPool(playerID)
	if !ok {
		return fmt.Errorf("%w: player_id=%d is not on the board", ErrNotFound, playerID)
	}
	b.detail.Select(ctx, p)
	return nil
}

func (b *DraftBoard) ClosePlayer() {
	b.detail.Close()
}

func (b *DraftBoard) Draft(ctx context.Context, playerID int64) (player.Player, error) {
	return b.session.Draft(ctx, playerID)
}

func (b *DraftBoard) History(ctx context.Context) ([]draftlog.Pick, error) {
	return b.session.History(ctx)
}

func (b *DraftBoard) Snapshot() BoardSnapshot {
	q := b.query.Snapshot()
	s := b.session.Snapshot()

	rows := make([]PlayerRow, 0, len(s.Pool))
	for _, p := range s.Pool {
		rows = append(rows, PlayerRow{
			Player:    p,
			Points:    scoring.Score(p.Stats, q.Params.ScoringFormat),
			Projected: scoring.Score(p.Projections, q.Params.ScoringFormat),
		})
	}

	arrows := make(map[query.SortKey]string, len(query.SortKeys))
	for _, key := range query.SortKeys {
		arrows[key] = q.Params.Sort.Arrow(key)
	}

	return BoardSnapshot{
		SessionID:   s.ID,
		Params:      q.Params,
		ListStatus:  q.Status,
		ListError:   q.Error,
		TotalPages:  q.TotalPages,
		Rows:        rows,
		TeamOptions: player.TeamOptions(s.Pool),
		SortArrows:  arrows,
		Team:        s.Team,
		Roster:      s.Roster,
		Detail:      b.detail.Snapshot(),
	}
}
