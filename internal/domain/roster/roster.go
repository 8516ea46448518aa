package roster

import "github.com/riskibarqy/fantasy-draft/internal/domain/player"

// Slot names a roster group.
type Slot string

const (
	SlotQB    Slot = "QB"
	SlotRB    Slot = "RB"
	SlotWR    Slot = "WR"
	SlotTE    Slot = "TE"
	SlotK     Slot = "K"
	SlotDEF   Slot = "DEF"
	SlotBench Slot = "BENCH"
)

// Unlimited marks a group without a capacity.
const Unlimited = -1

// SlotOrder is the display order of roster groups.
var SlotOrder = []Slot{SlotQB, SlotRB, SlotWR, SlotTE, SlotK, SlotDEF, SlotBench}

// StarterCapacity is the fixed starter shape of a team.
var StarterCapacity = map[Slot]int{
	SlotQB:  1,
	SlotRB:  2,
	SlotWR:  2,
	SlotTE:  1,
	SlotK:   1,
	SlotDEF: 1,
}

// Group is one roster slot and the players assigned to it in draft order.
type Group struct {
	Slot     Slot
	Capacity int
	Players  []player.Player
}

func (g Group) Empty() bool {
	return len(g.Players) == 0
}

// OpenSeats reports remaining starter seats; bench groups always return Unlimited.
func (g Group) OpenSeats() int {
	if g.Capacity == Unlimited {
		return Unlimited
	}
	return g.Capacity - len(g.Players)
}

// Roster is the derived partition of a team. Every slot is always present.
type Roster struct {
	Groups []Group
}

func (r Roster) Group(slot Slot) Group {
	for _, g := range r.Groups {
		if g.Slot == slot {
			return g
		}
	}
	return Group{Slot: slot, Capacity: capacityOf(slot)}
}

func (r Roster) Bench() []player.Player {
	return r.Group(SlotBench).Players
}

func (r Roster) Size() int {
	total := 0
	for _, g := range r.Groups {
		total += len(g.Players)
	}
	return total
}

// Assign distributes team into starter slots in draft order, spilling into the bench.
// Players with unknown positions always land on the bench.
func Assign(team []player.Player) Roster {
	groups := make([]Group, len(SlotOrder))
	index := make(map[Slot]int, len(SlotOrder))
	for i, slot := range SlotOrder {
		groups[i] = Group{Slot: slot, Capacity: capacityOf(slot), Players: []player.Player{}}
		index[slot] = i
	}

	bench := index[SlotBench]
	for _, p := range team {
		target := bench
		if i, ok := index[Slot(p.Position)]; ok && i != bench {
			if len(groups[i].Players) < groups[i].Capacity {
				target = i
			}
		}
		groups[target].Players = append(groups[target].Players, p)
	}

	return Roster{Groups: groups}
}

func capacityOf(slot Slot) int {
	if capacity, ok := StarterCapacity[slot]; ok {
		return capacity
	}
	return Unlimited
}
