package query

import (
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
)

func TestSortConfigNext_ThreeClickCycle(t *testing.T) {
	s := DefaultSort()

	s = s.Next(SortByName)
	if s != (SortConfig{Key: SortByName, Direction: Ascending}) {
		t.Fatalf("first click: got=%+v", s)
	}
	s = s.Next(SortByName)
	if s != (SortConfig{Key: SortByName, Direction: Descending}) {
		t.Fatalf("second click: got=%+v", s)
	}
	s = s.Next(SortByName)
	if s != DefaultSort() {
		t.Fatalf("third click: got=%+v want=%+v", s, DefaultSort())
	}
}

func TestSortConfigNext_DefaultColumn(t *testing.T) {
	s := DefaultSort().Next(SortByADP)
	if s != (SortConfig{Key: SortByADP, Direction: Descending}) {
		t.Fatalf("clicking default column should flip to descending, got=%+v", s)
	}
	if s = s.Next(SortByADP); s != DefaultSort() {
		t.Fatalf("expected reset to default, got=%+v", s)
	}
}

func TestSortConfigNext_SwitchColumn(t *testing.T) {
	s := SortConfig{Key: SortByTeam, Direction: Descending}.Next(SortByStats)
	if s != (SortConfig{Key: SortByStats, Direction: Ascending}) {
		t.Fatalf("switching columns should start ascending, got=%+v", s)
	}
}

func TestSortConfigArrow(t *testing.T) {
	tests := []struct {
		name string
		sort SortConfig
		key  SortKey
		want string
	}{
		{name: "ascending", sort: SortConfig{Key: SortByName, Direction: Ascending}, key: SortByName, want: "▲"},
		{name: "descending", sort: SortConfig{Key: SortByName, Direction: Descending}, key: SortByName, want: "▼"},
		{name: "other column", sort: SortConfig{Key: SortByName, Direction: Ascending}, key: SortByTeam, want: ""},
		{name: "unknown direction", sort: SortConfig{Key: SortByName, Direction: "sideways"}, key: SortByName, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sort.Arrow(tt.key); got != tt.want {
				t.Fatalf("Arrow(%s)=%q want=%q", tt.key, got, tt.want)
			}
		})
	}
}

func TestPositionFilterMatches(t *testing.T) {
	tests := []struct {
		filter PositionFilter
		pos    player.Position
		want   bool
	}{
		{filter: PositionAll, pos: player.PositionKicker, want: true},
		{filter: PositionFlex, pos: player.PositionRunningBack, want: true},
		{filter: PositionFlex, pos: player.PositionTightEnd, want: true},
		{filter: PositionFlex, pos: player.PositionQuarterback, want: false},
		{filter: PositionSuperflex, pos: player.PositionQuarterback, want: true},
		{filter: PositionSuperflex, pos: player.PositionDefense, want: false},
		{filter: PositionFilter("WR"), pos: player.PositionWideReceiver, want: true},
		{filter: PositionFilter("WR"), pos: player.PositionTightEnd, want: false},
	}
	for _, tt := range tests {
		if got := tt.filter.Matches(tt.pos); got != tt.want {
			t.Fatalf("%q.Matches(%s)=%v want=%v", tt.filter, tt.pos, got, tt.want)
		}
	}
}

func TestParametersValidate(t *testing.T) {
	valid := Default()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default parameters should validate: %v", err)
	}

	invalid := []Parameters{
		func() Parameters { p := Default(); p.Page = 0; return p }(),
		func() Parameters { p := Default(); p.PositionFilter = "LB"; return p }(),
		func() Parameters { p := Default(); p.Sort.Key = "ExperienceString"; return p }(),
		func() Parameters { p := Default(); p.Sort.Direction = ""; return p }(),
		func() Parameters { p := Default(); p.ScoringFormat = "std"; return p }(),
	}
	for i, p := range invalid {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, p)
		}
	}
}

func TestParametersEncode(t *testing.T) {
	p := Default()
	p.SearchTerm = "allen"
	p.PositionFilter = PositionSuperflex
	p.ScoringFormat = scoring.FormatHalfPPR
	p.Page = 3

	values := p.Encode(50)
	want := map[string]string{
		"searchTerm":     "allen",
		"positionFilter": "SUPERFLEX",
		"teamFilter":     "",
		"sortKey":        "adp",
		"sortDirection":  "ascending",
		"scoringFormat":  "half_ppr",
		"page":           "3",
		"limit":          "50",
	}
	for key, value := range want {
		if got := values.Get(key); got != value {
			t.Fatalf("param %s: got=%q want=%q", key, got, value)
		}
	}
	if Default() != Default() {
		t.Fatalf("parameters must be comparable by value")
	}
}

func TestParseSortKey(t *testing.T) {
	if key, ok := ParseSortKey("name"); !ok || key != SortByName {
		t.Fatalf("ParseSortKey(name)=(%s,%v)", key, ok)
	}
	if _, ok := ParseSortKey("salary"); ok {
		t.Fatalf("expected unknown sort key to be rejected")
	}
}
