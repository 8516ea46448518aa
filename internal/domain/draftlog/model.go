package draftlog

import (
	"context"
	"fmt"
	"time"
)

// Pick records one successful draft in a session.
type Pick struct {
	SessionID  string
	PickNumber int
	PlayerID   int64
	PlayerName string
	Position   string
	Team       string
	DraftedAt  time.Time
}

func (p Pick) Validate() error {
	if p.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if p.PickNumber < 1 {
		return fmt.Errorf("pick number must be >= 1")
	}
	if p.PlayerID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	return nil
}

// Repository persists the draft history of a session.
type Repository interface {
	Append(ctx context.Context, pick Pick) error
	ListBySession(ctx context.Context, sessionID string) ([]Pick, error)
}
