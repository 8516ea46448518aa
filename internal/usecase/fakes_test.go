package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
)

// stubProvider records every request and answers through the configured funcs.
type stubProvider struct {
	mu          sync.Mutex
	listCalls   []query.Parameters
	detailCalls []int64
	list        func(query.Parameters) (player.Page, error)
	detail      func(int64) (player.Detail, error)
}

func (p *stubProvider) ListPlayers(_ context.Context, params query.Parameters) (player.Page, error) {
	p.mu.Lock()
	p.listCalls = append(p.listCalls, params)
	fn := p.list
	p.mu.Unlock()
	if fn == nil {
		return player.Page{Players: []player.Player{}, TotalPages: 1}, nil
	}
	return fn(params)
}

func (p *stubProvider) GetPlayerDetail(_ context.Context, playerID int64) (player.Detail, error) {
	p.mu.Lock()
	p.detailCalls = append(p.detailCalls, playerID)
	fn := p.detail
	p.mu.Unlock()
	if fn == nil {
		return player.EmptyDetail(), nil
	}
	return fn(playerID)
}

func (p *stubProvider) ListCallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listCalls)
}

func (p *stubProvider) LastListCall() query.Parameters {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.listCalls) == 0 {
		return query.Parameters{}
	}
	return p.listCalls[len(p.listCalls)-1]
}

// poolRecorder captures what PlayerQueryState hands to its sink.
type poolRecorder struct {
	mu    sync.Mutex
	pools [][]player.Player
}

func (r *poolRecorder) Sink(players []player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools = append(r.pools, players)
}

func (r *poolRecorder) Last() ([]player.Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pools) == 0 {
		return nil, false
	}
	return r.pools[len(r.pools)-1], true
}

type fakeCloser struct {
	closed []int64
}

func (c *fakeCloser) CloseIf(playerID int64) bool {
	c.closed = append(c.closed, playerID)
	return true
}

func samplePlayers() []player.Player {
	return []player.Player{
		{ID: 101, Name: "Josh Allen", Position: player.PositionQuarterback, Team: "BUF", AverageDraftPosition: 20.1,
			Stats: player.StatLine{"FantasyPoints": 380.0, "FantasyPointsPPR": 380.0}, Projections: player.StatLine{"FantasyPoints": 360.0}},
		{ID: 102, Name: "Bijan Robinson", Position: player.PositionRunningBack, Team: "ATL", AverageDraftPosition: 2.3,
			Stats: player.StatLine{"FantasyPoints": 250.0, "FantasyPointsPPR": 310.0}, Projections: player.StatLine{"FantasyPoints": 240.0, "FantasyPointsPPR": 300.0}},
		{ID: 103, Name: "Ja'Marr Chase", Position: player.PositionWideReceiver, Team: "CIN", AverageDraftPosition: 1.2,
			Stats: player.StatLine{"FantasyPoints": 270.0, "FantasyPointsPPR": 400.0}},
		{ID: 104, Name: "Brock Bowers", Position: player.PositionTightEnd, Team: "LV", AverageDraftPosition: 30.5,
			Stats: player.StatLine{"FantasyPoints": 150.0, "FantasyPointsPPR": 260.0}},
		{ID: 105, Name: "Brandon Aubrey", Position: player.PositionKicker, Team: "DAL"},
		{ID: 106, Name: "Jordan Mailata", Position: "OL", Team: "PHI", AverageDraftPosition: 0.5},
		{ID: 107, Name: "Derrick Henry", Position: player.PositionRunningBack, Team: "BAL", AverageDraftPosition: 12.4,
			Stats: player.StatLine{"FantasyPoints": 300.0, "FantasyPointsPPR": 320.0}},
		{ID: 108, Name: "Jahmyr Gibbs", Position: player.PositionRunningBack, Team: "DET", AverageDraftPosition: 3.1,
			Stats: player.StatLine{"FantasyPoints": 290.0, "FantasyPointsPPR": 340.0}},
		{ID: 109, Name: "Lamar Jackson", Position: player.PositionQuarterback, Team: "BAL", AverageDraftPosition: 21.0,
			Stats: player.StatLine{"FantasyPoints": 400.0}},
		{ID: 110, Name: "Bills D/ST", Position: player.PositionDefense, Team: "BUF", AverageDraftPosition: 150.0},
	}
}

func playerIDs(players []player.Player) []int64 {
	out := make([]int64, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}
