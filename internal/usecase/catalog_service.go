package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/cache"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 500

	catalogCacheKey  = "catalog:players"
	newsCachePrefix  = "catalog:news:"
	missingADPWeight = 999
)

// CatalogService answers list and detail queries from the full player catalog.
type CatalogService struct {
	catalog  player.Catalog
	players  *cache.Store[[]player.Player]
	news     *cache.Store[[]player.News]
	pageSize int
	logger   *logging.Logger
}

func NewCatalogService(catalog player.Catalog, cacheTTL time.Duration, pageSize int, logger *logging.Logger) *CatalogService {
	if logger == nil {
		logger = logging.Default()
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return &CatalogService{
		catalog:  catalog,
		players:  cache.NewStore[[]player.Player](cacheTTL),
		news:     cache.NewStore[[]player.News](cacheTTL),
		pageSize: pageSize,
		logger:   logger,
	}
}

// ListPlayers serves a page using the configured page size.
func (s *CatalogService) ListPlayers(ctx context.Context, params query.Parameters) (player.Page, error) {
	return s.ListPlayersWithLimit(ctx, params, s.pageSize)
}

func (s *CatalogService) ListPlayersWithLimit(ctx context.Context, params query.Parameters, limit int) (player.Page, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListPlayers",
		attribute.Int("page", params.Page),
		attribute.Int("limit", limit),
	)
	defer span.End()

	if err := params.Validate(); err != nil {
		return player.Page{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if limit < 1 || limit > MaxPageSize {
		return player.Page{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxPageSize)
	}

	all, err := s.loadPlayers(ctx)
	if err != nil {
		recordSpanError(span, err)
		return player.Page{}, err
	}

	filtered := filterPlayers(all, params)
	sortPlayers(filtered, params.Sort, params.ScoringFormat)
	return paginate(filtered, params.Page, limit), nil
}

// GetPlayerDetail returns news, stats and projections for playerID.
func (s *CatalogService) GetPlayerDetail(ctx context.Context, playerID int64) (player.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.GetPlayerDetail", attribute.Int64("player_id", playerID))
	defer span.End()

	if playerID <= 0 {
		return player.Detail{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	all, err := s.loadPlayers(ctx)
	if err != nil {
		recordSpanError(span, err)
		return player.Detail{}, err
	}

	var found *player.Player
	for i := range all {
		if all[i].ID == playerID {
			found = &all[i]
			break
		}
	}
	if found == nil {
		return player.Detail{}, fmt.Errorf("%w: player_id=%d", ErrNotFound, playerID)
	}

	news, err := s.news.GetOrLoad(ctx, newsCachePrefix+strconv.FormatInt(playerID, 10), func(ctx context.Context) ([]player.News, error) {
		return s.catalog.ListNews(ctx, playerID)
	})
	if err != nil {
		recordSpanError(span, err)
		return player.Detail{}, fmt.Errorf("list news player_id=%d: %w", playerID, err)
	}
	if news == nil {
		news = []player.News{}
	}

	return player.Detail{
		News:        news,
		Stats:       found.Stats.Clone(),
		Projections: found.Projections.Clone(),
	}, nil
}

// Refresh drops cached catalog data and loads the player universe again.
func (s *CatalogService) Refresh(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Refresh")
	defer span.End()

	playerStats, newsStats := s.players.Stats(), s.news.Stats()
	s.logger.DebugContext(ctx, "dropping catalog caches",
		"player_hits", playerStats.Hits,
		"player_misses", playerStats.Misses,
		"news_entries", newsStats.Entries,
		"news_hits", newsStats.Hits,
	)
	s.players.Delete(ctx, catalogCacheKey)
	s.news.DeletePrefix(ctx, newsCachePrefix)

	players, err := s.loadPlayers(ctx)
	if err != nil {
		recordSpanError(span, err)
		return err
	}
	s.logger.InfoContext(ctx, "player catalog refreshed", "players", len(players))
	return nil
}

func (s *CatalogService) loadPlayers(ctx context.Context) ([]player.Player, error) {
	players, err := s.players.GetOrLoad(ctx, catalogCacheKey, func(ctx context.Context) ([]player.Player, error) {
		loaded, err := s.catalog.ListPlayers(ctx)
		if err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "player catalog loaded", "players", len(loaded))
		return loaded, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load player catalog: %w", err)
	}
	return players, nil
}

func filterPlayers(all []player.Player, params query.Parameters) []player.Player {
	term := strings.ToLower(strings.TrimSpace(params.SearchTerm))
	out := make([]player.Player, 0, len(all))
	for _, p := range all {
		if p.Position.Excluded() {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if !params.PositionFilter.Matches(p.Position) {
			continue
		}
		if params.TeamFilter != "" && p.Team != params.TeamFilter {
			continue
		}
		out = append(out, p)
	}
	return out
}

// sortPlayers is stable in both directions; ties keep catalog order.
func sortPlayers(players []player.Player, cfg query.SortConfig, format scoring.Format) {
	compare := comparatorFor(cfg.Key, format)
	descending := cfg.Direction == query.Descending
	sort.SliceStable(players, func(i, j int) bool {
		c := compare(players[i], players[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
}

func comparatorFor(key query.SortKey, format scoring.Format) func(a, b player.Player) int {
	switch key {
	case query.SortByStats:
		return func(a, b player.Player) int {
			return compareFloat(scoring.Score(a.Stats, format), scoring.Score(b.Stats, format))
		}
	case query.SortByProjections:
		return func(a, b player.Player) int {
			return compareFloat(scoring.Score(a.Projections, format), scoring.Score(b.Projections, format))
		}
	case query.SortByName:
		return func(a, b player.Player) int { return strings.Compare(a.Name, b.Name) }
	case query.SortByPosition:
		return func(a, b player.Player) int { return strings.Compare(string(a.Position), string(b.Position)) }
	case query.SortByTeam:
		return func(a, b player.Player) int { return strings.Compare(a.Team, b.Team) }
	default:
		return func(a, b player.Player) int { return compareFloat(adpWeight(a), adpWeight(b)) }
	}
}

func adpWeight(p player.Player) float64 {
	if p.AverageDraftPosition <= 0 {
		return missingADPWeight
	}
	return p.AverageDraftPosition
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func paginate(players []player.Player, page, limit int) player.Page {
	total := len(players)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start >= total {
		return player.Page{Players: []player.Player{}, TotalPages: totalPages}
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]player.Player, end-start)
	copy(out, players[start:end])
	return player.Page{Players: out, TotalPages: totalPages}
}
