package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/worker"
)

func newTestBoard(provider PlayerProvider) *DraftBoard {
	return NewDraftBoard(DraftBoardConfig{
		SessionID: "board-1",
		Provider:  provider,
		Runner:    worker.InlineRunner{},
		Logger:    logging.NewNop(),
	})
}

func TestDraftBoard_RowsUseActiveScoringFormat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &stubProvider{list: func(query.Parameters) (player.Page, error) {
		return player.Page{Players: samplePlayers()[:2], TotalPages: 1}, nil
	}}
	board := newTestBoard(provider)
	board.Load(ctx)

	tests := []struct {
		format scoring.Format
		want   float64
	}{
		{format: scoring.FormatPPR, want: 310},
		{format: scoring.FormatStandard, want: 250},
		{format: scoring.FormatHalfPPR, want: 280},
	}
	for _, tt := range tests {
		if _, err := board.SetScoringFormat(ctx, tt.format); err != nil {
			t.Fatalf("set format %s: %v", tt.format, err)
		}
		snap := board.Snapshot()
		if len(snap.Rows) != 2 {
			t.Fatalf("unexpected rows: %d", len(snap.Rows))
		}
		if got := snap.Rows[1].Points; got != tt.want {
			t.Fatalf("format %s: got=%v want=%v", tt.format, got, tt.want)
		}
	}
}

func TestDraftBoard_PageBounds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &stubProvider{list: func(query.Parameters) (player.Page, error) {
		return player.Page{Players: samplePlayers()[:1], TotalPages: 2}, nil
	}}
	board := newTestBoard(provider)
	board.Load(ctx)

	if _, err := board.PrevPage(ctx); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on first page, got %v", err)
	}
	if _, err := board.NextPage(ctx); err != nil {
		t.Fatalf("next page: %v", err)
	}
	snap := board.Snapshot()
	if snap.Params.Page != 2 || snap.HasNextPage() || !snap.HasPrevPage() {
		t.Fatalf("unexpected paging state: page=%d total=%d", snap.Params.Page, snap.TotalPages)
	}
	if _, err := board.NextPage(ctx); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on last page, got %v", err)
	}
}

func TestDraftBoard_DraftClosesDetailAndFillsRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &stubProvider{list: func(query.Parameters) (player.Page, error) {
		return player.Page{Players: samplePlayers(), TotalPages: 1}, nil
	}}
	board := newTestBoard(provider)
	board.Load(ctx)

	if err := board.SelectPlayer(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
	if err := board.SelectPlayer(ctx, 101); err != nil {
		t.Fatalf("select: %v", err)
	}
	if snap := board.Snapshot(); snap.Detail.Selected == nil || snap.Detail.Selected.ID != 101 {
		t.Fatalf("expected detail view for 101, got %+v", snap.Detail)
	}

	for _, id := range []int64{101, 109} {
		if _, err := board.Draft(ctx, id); err != nil {
			t.Fatalf("draft %d: %v", id, err)
		}
	}

	snap := board.Snapshot()
	if snap.Detail.Selected != nil {
		t.Fatalf("drafting the shown player must close the detail view")
	}
	if got := playerIDs(snap.Roster.Bench()); len(got) != 1 || got[0] != 109 {
		t.Fatalf("expected second QB on bench, got=%v", got)
	}
	for _, row := range snap.Rows {
		if row.Player.ID == 101 || row.Player.ID == 109 {
			t.Fatalf("drafted player %d still on the board", row.Player.ID)
		}
	}

	// A refetch must not bring drafted players back.
	board.SetSearchTerm(ctx, "a")
	for _, row := range board.Snapshot().Rows {
		if row.Player.ID == 101 {
			t.Fatalf("drafted player reappeared after refetch")
		}
	}
}

func TestDraftBoard_SnapshotSortArrowsAndTeams(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := &stubProvider{list: func(query.Parameters) (player.Page, error) {
		return player.Page{Players: samplePlayers()[:3], TotalPages: 1}, nil
	}}
	board := newTestBoard(provider)
	board.Load(ctx)
	if _, err := board.RequestSort(ctx, query.SortByName); err != nil {
		t.Fatalf("sort: %v", err)
	}

	snap := board.Snapshot()
	if snap.SortArrows[query.SortByName] != "▲" || snap.SortArrows[query.SortByADP] != "" {
		t.Fatalf("unexpected arrows: %v", snap.SortArrows)
	}
	want := []string{"ATL", "BUF", "CIN"}
	if len(snap.TeamOptions) != len(want) {
		t.Fatalf("unexpected team options: %v", snap.TeamOptions)
	}
	for i := range want {
		if snap.TeamOptions[i] != want[i] {
			t.Fatalf("unexpected team options: got=%v want=%v", snap.TeamOptions, want)
		}
	}
	if snap.SessionID != "board-1" {
		t.Fatalf("unexpected session id: %s", snap.SessionID)
	}
}
