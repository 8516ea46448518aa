package player

import "context"

// Catalog describes where the full draftable player universe comes from.
type Catalog interface {
	ListPlayers(ctx context.Context) ([]Player, error)
	ListNews(ctx context.Context, playerID int64) ([]News, error)
}
