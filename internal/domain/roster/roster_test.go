package roster

import (
	"testing"

	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

func TestAssign(t *testing.T) {
	qb1 := player.Player{ID: 1, Name: "QB One", Position: player.PositionQuarterback}
	rb1 := player.Player{ID: 2, Name: "RB One", Position: player.PositionRunningBack}
	rb2 := player.Player{ID: 3, Name: "RB Two", Position: player.PositionRunningBack}
	rb3 := player.Player{ID: 4, Name: "RB Three", Position: player.PositionRunningBack}
	qb2 := player.Player{ID: 5, Name: "QB Two", Position: player.PositionQuarterback}

	got := Assign([]player.Player{qb1, rb1, rb2, rb3, qb2})

	assertIDs(t, got.Group(SlotQB), 1)
	assertIDs(t, got.Group(SlotRB), 2, 3)
	assertIDs(t, got.Group(SlotBench), 4, 5)
	for _, slot := range []Slot{SlotWR, SlotTE, SlotK, SlotDEF} {
		if !got.Group(slot).Empty() {
			t.Fatalf("expected %s to be empty", slot)
		}
	}
}

func TestAssign_AllGroupsPresentForEmptyTeam(t *testing.T) {
	got := Assign(nil)
	if len(got.Groups) != len(SlotOrder) {
		t.Fatalf("unexpected group count: got=%d want=%d", len(got.Groups), len(SlotOrder))
	}
	for i, slot := range SlotOrder {
		g := got.Groups[i]
		if g.Slot != slot {
			t.Fatalf("unexpected slot order at %d: got=%s want=%s", i, g.Slot, slot)
		}
		if !g.Empty() {
			t.Fatalf("expected %s to be empty", slot)
		}
		if g.Players == nil {
			t.Fatalf("expected %s players to be an empty list, not nil", slot)
		}
	}
	if got.Group(SlotBench).Capacity != Unlimited {
		t.Fatalf("expected unlimited bench capacity")
	}
}

func TestAssign_UnknownPositionGoesToBench(t *testing.T) {
	got := Assign([]player.Player{
		{ID: 10, Position: "LB"},
		{ID: 11, Position: ""},
		{ID: 12, Position: "BENCH"},
		{ID: 13, Position: player.PositionKicker},
	})

	assertIDs(t, got.Group(SlotBench), 10, 11, 12)
	assertIDs(t, got.Group(SlotK), 13)
	if got.Size() != 4 {
		t.Fatalf("unexpected roster size: got=%d want=4", got.Size())
	}
}

func TestAssign_Idempotent(t *testing.T) {
	team := []player.Player{
		{ID: 1, Position: player.PositionWideReceiver},
		{ID: 2, Position: player.PositionWideReceiver},
		{ID: 3, Position: player.PositionWideReceiver},
		{ID: 4, Position: player.PositionDefense},
		{ID: 5, Position: player.PositionTightEnd},
	}

	first := Assign(team)
	second := Assign(team)
	for i := range first.Groups {
		a, b := first.Groups[i], second.Groups[i]
		if len(a.Players) != len(b.Players) {
			t.Fatalf("slot %s differs between runs: %d vs %d", a.Slot, len(a.Players), len(b.Players))
		}
		for j := range a.Players {
			if a.Players[j].ID != b.Players[j].ID {
				t.Fatalf("slot %s differs at %d", a.Slot, j)
			}
		}
	}
	assertIDs(t, first.Group(SlotWR), 1, 2)
	assertIDs(t, first.Group(SlotBench), 3)
	if seats := first.Group(SlotWR).OpenSeats(); seats != 0 {
		t.Fatalf("unexpected WR open seats: got=%d want=0", seats)
	}
}

func assertIDs(t *testing.T, g Group, want ...int64) {
	t.Helper()
	if len(g.Players) != len(want) {
		t.Fatalf("slot %s: unexpected player count: got=%d want=%d", g.Slot, len(g.Players), len(want))
	}
	for i, id := range want {
		if g.Players[i].ID != id {
			t.Fatalf("slot %s: unexpected player at %d: got=%d want=%d", g.Slot, i, g.Players[i].ID, id)
		}
	}
}
