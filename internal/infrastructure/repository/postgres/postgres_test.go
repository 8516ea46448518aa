package postgres

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/domain/draftlog"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

func TestBuildAppendPickQuery(t *testing.T) {
	drafted := time.Date(2025, 9, 1, 20, 0, 0, 0, time.FixedZone("PDT", -7*3600))
	query, args, err := buildAppendPickQuery(draftlog.Pick{
		SessionID:  "s1",
		PickNumber: 3,
		PlayerID:   22461,
		PlayerName: "Ja'Marr Chase",
		Position:   "WR",
		Team:       "CIN",
		DraftedAt:  drafted,
	})
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "INSERT INTO draft_picks (session_id, pick_number, player_id, player_name, position, team, drafted_at) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (session_id, pick_number) WHERE deleted_at IS NULL DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 7 {
		t.Fatalf("unexpected arg count: %d", len(args))
	}
	if got := args[6].(time.Time); got.Location() != time.UTC || !got.Equal(drafted) {
		t.Fatalf("expected drafted_at normalized to UTC, got=%v", got)
	}
}

func TestBuildListPicksQuery(t *testing.T) {
	query, args, err := buildListPicksQuery("s1")
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	want := "SELECT id, session_id, pick_number, player_id, player_name, position, team, drafted_at, created_at, deleted_at FROM draft_picks WHERE session_id = $1 AND deleted_at IS NULL ORDER BY pick_number"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 || args[0] != "s1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestNFLPlayerRowToDomain(t *testing.T) {
	row := nflPlayerTableModel{
		PlayerID:    19801,
		Name:        "Josh Allen",
		Position:    "QB",
		Team:        "BUF",
		Stats:       []byte(`{"FantasyPoints": 385.4, "Season": 2024}`),
		Projections: nil,
	}

	p, err := row.toDomain()
	if err != nil {
		t.Fatalf("to domain: %v", err)
	}
	if got, ok := p.Stats.Float(player.StatFantasyPoints); !ok || got != 385.4 {
		t.Fatalf("unexpected stats: %v", p.Stats)
	}
	if p.Projections == nil || len(p.Projections) != 0 {
		t.Fatalf("expected empty projections, got=%v", p.Projections)
	}
	if p.AverageDraftPosition != 0 {
		t.Fatalf("expected missing adp, got=%v", p.AverageDraftPosition)
	}

	row.Stats = []byte(`{not json`)
	if _, err := row.toDomain(); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNFLPlayerParamsBindsAllNamedColumns(t *testing.T) {
	params, err := nflPlayerParams(player.Player{ID: 1, Name: "Kicker", Position: "K", Team: "DAL"})
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if params["average_draft_position"] != nil {
		t.Fatalf("missing adp must bind NULL, got=%v", params["average_draft_position"])
	}
	if params["stats"] != "{}" {
		t.Fatalf("nil stat line must bind an empty object, got=%v", params["stats"])
	}

	query, args, err := sqlx.Named(upsertNFLPlayerSQL, params)
	if err != nil {
		t.Fatalf("bind named query: %v", err)
	}
	if len(args) != 8 {
		t.Fatalf("unexpected bound args: got=%d want=8 (%s)", len(args), query)
	}
}
