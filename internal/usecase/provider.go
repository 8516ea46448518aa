package usecase

import (
	"context"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
)

// PlayerProvider is the remote source of player pages and player details.
// Implementations report network failures wrapped with ErrTransport and
// error envelopes as *ProviderError.
type PlayerProvider interface {
	ListPlayers(ctx context.Context, params query.Parameters) (player.Page, error)
	GetPlayerDetail(ctx context.Context, playerID int64) (player.Detail, error)
}

// Change identifies which part of the board moved.
type Change string

const (
	ChangeList   Change = "list"
	ChangeDetail Change = "detail"
	ChangeTeam   Change = "team"
)

// ChangeListener is notified after a state container applied an update.
// It is never called while a container lock is held.
type ChangeListener func(Change)

func (l ChangeListener) notify(c Change) {
	if l != nil {
		l(c)
	}
}
