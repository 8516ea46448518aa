package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

// resolvePlayer finds a row by numeric id or by a fuzzy name match. A tie at
// the best match distance is reported instead of guessed.
func resolvePlayer(rows []usecase.PlayerRow, arg string) (player.Player, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return player.Player{}, fmt.Errorf("%w: player id or name is required", usecase.ErrInvalidInput)
	}

	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		for _, row := range rows {
			if row.Player.ID == id {
				return row.Player, nil
			}
		}
		return player.Player{}, fmt.Errorf("%w: player_id=%d is not on this page", usecase.ErrNotFound, id)
	}

	names := make([]string, len(rows))
	for i, row := range rows {
		if strings.EqualFold(row.Player.Name, arg) {
			return row.Player, nil
		}
		names[i] = row.Player.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(arg, names)
	if len(ranks) == 0 {
		return player.Player{}, fmt.Errorf("%w: no player on this page matches %q", usecase.ErrNotFound, arg)
	}
	sort.Sort(ranks)

	best := ranks[0].Distance
	candidates := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		if rank.Distance != best {
			break
		}
		candidates = append(candidates, rank.Target)
	}
	if len(candidates) > 1 {
		return player.Player{}, fmt.Errorf("%w: %q matches %s", usecase.ErrInvalidInput, arg, strings.Join(candidates, ", "))
	}
	return rows[ranks[0].OriginalIndex].Player, nil
}
