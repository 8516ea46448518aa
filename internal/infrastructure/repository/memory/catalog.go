package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

type Catalog struct {
	mu           sync.RWMutex
	players      []player.Player
	newsByPlayer map[int64][]player.News
}

func NewCatalog(players []player.Player, news []player.News) *Catalog {
	newsByPlayer := make(map[int64][]player.News)
	for _, item := range news {
		newsByPlayer[item.PlayerID] = append(newsByPlayer[item.PlayerID], item)
	}

	return &Catalog{
		players:      append([]player.Player(nil), players...),
		newsByPlayer: newsByPlayer,
	}
}

func (c *Catalog) ListPlayers(_ context.Context) ([]player.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]player.Player, 0, len(c.players))
	for _, p := range c.players {
		p.Stats = p.Stats.Clone()
		p.Projections = p.Projections.Clone()
		out = append(out, p)
	}
	return out, nil
}

func (c *Catalog) ListNews(_ context.Context, playerID int64) ([]player.News, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := c.newsByPlayer[playerID]
	out := make([]player.News, 0, len(items))
	out = append(out, items...)
	return out, nil
}

// ReplacePlayers swaps the whole player universe, e.g. after a vendor sync.
func (c *Catalog) ReplacePlayers(players []player.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = append([]player.Player(nil), players...)
}
