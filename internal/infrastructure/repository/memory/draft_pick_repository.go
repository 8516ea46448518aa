package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draftlog"
)

type DraftPickRepository struct {
	mu        sync.RWMutex
	bySession map[string][]draftlog.Pick
}

func NewDraftPickRepository() *DraftPickRepository {
	return &DraftPickRepository{
		bySession: make(map[string][]draftlog.Pick),
	}
}

// Append stores pick. Re-appending the same pick number is a no-op.
func (r *DraftPickRepository) Append(_ context.Context, pick draftlog.Pick) error {
	if err := pick.Validate(); err != nil {
		return fmt.Errorf("append draft pick: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bySession[pick.SessionID] {
		if existing.PickNumber == pick.PickNumber {
			return nil
		}
	}
	r.bySession[pick.SessionID] = append(r.bySession[pick.SessionID], pick)
	return nil
}

func (r *DraftPickRepository) ListBySession(_ context.Context, sessionID string) ([]draftlog.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	picks := r.bySession[sessionID]
	out := make([]draftlog.Pick, 0, len(picks))
	out = append(out, picks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PickNumber < out[j].PickNumber
	})
	return out, nil
}
