package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
)

// SortKey names a sortable column.
type SortKey string

const (
	SortByADP         SortKey = "adp"
	SortByName        SortKey = "Name"
	SortByPosition    SortKey = "Position"
	SortByTeam        SortKey = "Team"
	SortByStats       SortKey = "stats"
	SortByProjections SortKey = "projections"
)

var SortKeys = []SortKey{SortByADP, SortByName, SortByPosition, SortByTeam, SortByStats, SortByProjections}

func (k SortKey) Valid() bool {
	for _, key := range SortKeys {
		if key == k {
			return true
		}
	}
	return false
}

// ParseSortKey matches keys case-insensitively.
func ParseSortKey(raw string) (SortKey, bool) {
	value := strings.TrimSpace(raw)
	for _, key := range SortKeys {
		if strings.EqualFold(string(key), value) {
			return key, true
		}
	}
	return "", false
}

type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

const (
	arrowAscending  = "▲"
	arrowDescending = "▼"
)

// SortConfig is the active sort column and direction.
type SortConfig struct {
	Key       SortKey
	Direction SortDirection
}

func DefaultSort() SortConfig {
	return SortConfig{Key: SortByADP, Direction: Ascending}
}

// Next applies a click on column key: ascending, then descending, then back to the default sort.
func (s SortConfig) Next(key SortKey) SortConfig {
	if s.Key != key {
		return SortConfig{Key: key, Direction: Ascending}
	}
	switch s.Direction {
	case Ascending:
		return SortConfig{Key: key, Direction: Descending}
	case Descending:
		return DefaultSort()
	default:
		return SortConfig{Key: key, Direction: Ascending}
	}
}

// Arrow is the indicator rendered next to column key.
func (s SortConfig) Arrow(key SortKey) string {
	if s.Key != key {
		return ""
	}
	switch s.Direction {
	case Ascending:
		return arrowAscending
	case Descending:
		return arrowDescending
	default:
		return ""
	}
}

// PositionFilter is empty, a single position, FLEX or SUPERFLEX.
type PositionFilter string

const (
	PositionAll       PositionFilter = ""
	PositionFlex      PositionFilter = "FLEX"
	PositionSuperflex PositionFilter = "SUPERFLEX"
)

var groupedPositions = map[PositionFilter][]player.Position{
	PositionFlex: {
		player.PositionRunningBack,
		player.PositionWideReceiver,
		player.PositionTightEnd,
	},
	PositionSuperflex: {
		player.PositionQuarterback,
		player.PositionRunningBack,
		player.PositionWideReceiver,
		player.PositionTightEnd,
	},
}

func (f PositionFilter) Valid() bool {
	if f == PositionAll {
		return true
	}
	if _, ok := groupedPositions[f]; ok {
		return true
	}
	for _, pos := range player.FantasyPositions {
		if PositionFilter(pos) == f {
			return true
		}
	}
	return false
}

func (f PositionFilter) Matches(pos player.Position) bool {
	if f == PositionAll {
		return true
	}
	if group, ok := groupedPositions[f]; ok {
		for _, candidate := range group {
			if candidate == pos {
				return true
			}
		}
		return false
	}
	return player.Position(f) == pos
}

// Parameters is the canonical list query. Values are comparable with ==.
type Parameters struct {
	SearchTerm     string
	PositionFilter PositionFilter
	TeamFilter     string
	Sort           SortConfig
	ScoringFormat  scoring.Format
	Page           int
}

func Default() Parameters {
	return Parameters{
		Sort:          DefaultSort(),
		ScoringFormat: scoring.DefaultFormat,
		Page:          1,
	}
}

func (p Parameters) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", p.Page)
	}
	if !p.PositionFilter.Valid() {
		return fmt.Errorf("invalid position filter %q", p.PositionFilter)
	}
	if !p.Sort.Key.Valid() {
		return fmt.Errorf("invalid sort key %q", p.Sort.Key)
	}
	if p.Sort.Direction != Ascending && p.Sort.Direction != Descending {
		return fmt.Errorf("invalid sort direction %q", p.Sort.Direction)
	}
	if !p.ScoringFormat.Valid() {
		return fmt.Errorf("invalid scoring format %q", p.ScoringFormat)
	}
	return nil
}

// Encode renders the parameters as the list endpoint query string.
func (p Parameters) Encode(limit int) url.Values {
	values := url.Values{}
	values.Set("searchTerm", p.SearchTerm)
	values.Set("positionFilter", string(p.PositionFilter))
	values.Set("teamFilter", p.TeamFilter)
	values.Set("sortKey", string(p.Sort.Key))
	values.Set("sortDirection", string(p.Sort.Direction))
	values.Set("scoringFormat", string(p.ScoringFormat))
	values.Set("page", strconv.Itoa(p.Page))
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	return values
}
