package sportsdata

import (
	"math"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

// playerItem is the subset of the Players feed the catalog keeps.
type playerItem struct {
	PlayerID             int64    `json:"PlayerID"`
	Name                 string   `json:"Name"`
	FirstName            string   `json:"FirstName"`
	LastName             string   `json:"LastName"`
	Position             string   `json:"Position"`
	Team                 string   `json:"Team"`
	PhotoURL             string   `json:"PhotoUrl"`
	AverageDraftPosition *float64 `json:"AverageDraftPosition"`
}

type newsItem struct {
	NewsID   int64  `json:"NewsID"`
	PlayerID *int64 `json:"PlayerID"`
	Title    string `json:"Title"`
	Content  string `json:"Content"`
	Source   string `json:"Source"`
	URL      string `json:"Url"`
	Updated  string `json:"Updated"`
}

func (n newsItem) toDomain() player.News {
	out := player.News{
		NewsID:  n.NewsID,
		Title:   strings.TrimSpace(n.Title),
		Content: strings.TrimSpace(n.Content),
		Source:  n.Source,
		URL:     n.URL,
		Updated: n.Updated,
	}
	if n.PlayerID != nil {
		out.PlayerID = *n.PlayerID
	}
	return out
}

func (p playerItem) name() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

func mergeCatalog(items []playerItem, stats, projections map[int64]player.StatLine) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.PlayerID <= 0 {
			continue
		}
		p := player.Player{
			ID:          item.PlayerID,
			Name:        item.name(),
			Position:    player.Position(strings.ToUpper(strings.TrimSpace(item.Position))),
			Team:        strings.ToUpper(strings.TrimSpace(item.Team)),
			PhotoURL:    item.PhotoURL,
			Stats:       stats[item.PlayerID],
			Projections: projections[item.PlayerID],
		}
		if item.AverageDraftPosition != nil && *item.AverageDraftPosition > 0 {
			p.AverageDraftPosition = *item.AverageDraftPosition
		}
		if p.Stats == nil {
			p.Stats = player.StatLine{}
		}
		if p.Projections == nil {
			p.Projections = player.StatLine{}
		}
		out = append(out, p)
	}
	return out
}

// indexByPlayerID keys season rows by their PlayerID. Later rows win.
func indexByPlayerID(rows []map[string]any) map[int64]player.StatLine {
	out := make(map[int64]player.StatLine, len(rows))
	for _, row := range rows {
		id, ok := int64Value(row["PlayerID"])
		if !ok || id <= 0 {
			continue
		}
		out[id] = player.StatLine(row)
	}
	return out
}

func int64Value(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return parsed, err == nil
	case interface{ Int64() (int64, error) }:
		parsed, err := v.Int64()
		return parsed, err == nil
	default:
		return 0, false
	}
}
