package player

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Position represents NFL position codes used by the draft board.
type Position string

const (
	PositionQuarterback  Position = "QB"
	PositionRunningBack  Position = "RB"
	PositionWideReceiver Position = "WR"
	PositionTightEnd     Position = "TE"
	PositionKicker       Position = "K"
	PositionDefense      Position = "DEF"
)

var FantasyPositions = []Position{
	PositionQuarterback,
	PositionRunningBack,
	PositionWideReceiver,
	PositionTightEnd,
	PositionKicker,
	PositionDefense,
}

// Positions that never appear in the draftable pool.
var excludedPositions = map[Position]struct{}{
	"P":  {},
	"G":  {},
	"C":  {},
	"OL": {},
}

func (p Position) Excluded() bool {
	_, ok := excludedPositions[p]
	return ok
}

// Player is an immutable snapshot of a draftable athlete as received from a provider.
type Player struct {
	ID                   int64    `json:"PlayerID"`
	Name                 string   `json:"Name"`
	Position             Position `json:"Position"`
	Team                 string   `json:"Team"`
	PhotoURL             string   `json:"PhotoUrl,omitempty"`
	AverageDraftPosition float64  `json:"AverageDraftPosition,omitempty"`
	Stats                StatLine `json:"Stats"`
	Projections          StatLine `json:"Projections"`
}

// StatLine is the raw vendor statistics object for one player and season.
type StatLine map[string]any

const (
	StatFantasyPoints    = "FantasyPoints"
	StatFantasyPointsPPR = "FantasyPointsPPR"
)

// Float returns the finite numeric value stored under key.
func (s StatLine) Float(key string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	raw, ok := s[key]
	if !ok || raw == nil {
		return 0, false
	}

	var value float64
	switch typed := raw.(type) {
	case float64:
		value = typed
	case float32:
		value = float64(typed)
	case int:
		value = float64(typed)
	case int64:
		value = float64(typed)
	case int32:
		value = float64(typed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0, false
		}
		value = parsed
	default:
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func (s StatLine) Clone() StatLine {
	if s == nil {
		return nil
	}
	out := make(StatLine, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// News is a vendor news item attached to a player.
type News struct {
	NewsID   int64  `json:"NewsID"`
	PlayerID int64  `json:"PlayerID,omitempty"`
	Title    string `json:"Title"`
	Content  string `json:"Content"`
	Source   string `json:"Source,omitempty"`
	URL      string `json:"Url,omitempty"`
	Updated  string `json:"Updated"`
}

// Detail is the per-player payload shown in the detail view.
type Detail struct {
	News        []News   `json:"news"`
	Stats       StatLine `json:"stats"`
	Projections StatLine `json:"projections"`
}

// EmptyDetail is the placeholder shown when a detail request fails.
func EmptyDetail() Detail {
	return Detail{
		News:        []News{},
		Stats:       StatLine{},
		Projections: StatLine{},
	}
}

// RecentNews returns at most limit news items in provider order.
func (d Detail) RecentNews(limit int) []News {
	if limit <= 0 || len(d.News) <= limit {
		return d.News
	}
	return d.News[:limit]
}

// Page is one page of a filtered, sorted player listing.
type Page struct {
	Players    []Player `json:"players"`
	TotalPages int      `json:"totalPages"`
}

// TeamOptions returns the unique, sorted, non-empty team abbreviations in players.
func TeamOptions(players []Player) []string {
	seen := make(map[string]struct{}, len(players))
	out := make([]string, 0, 32)
	for _, p := range players {
		team := strings.TrimSpace(p.Team)
		if team == "" {
			continue
		}
		if _, ok := seen[team]; ok {
			continue
		}
		seen[team] = struct{}{}
		out = append(out, team)
	}
	sort.Strings(out)
	return out
}
