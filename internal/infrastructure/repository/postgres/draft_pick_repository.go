package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/domain/draftlog"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type draftPickTableModel struct {
	ID         int64      `db:"id"`
	SessionID  string     `db:"session_id"`
	PickNumber int        `db:"pick_number"`
	PlayerID   int64      `db:"player_id"`
	PlayerName string     `db:"player_name"`
	Position   string     `db:"position"`
	Team       string     `db:"team"`
	DraftedAt  time.Time  `db:"drafted_at"`
	CreatedAt  time.Time  `db:"created_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type draftPickInsertModel struct {
	SessionID  string    `db:"session_id"`
	PickNumber int       `db:"pick_number"`
	PlayerID   int64     `db:"player_id"`
	PlayerName string    `db:"player_name"`
	Position   string    `db:"position"`
	Team       string    `db:"team"`
	DraftedAt  time.Time `db:"drafted_at"`
}

var draftPickSelectColumns = qb.MustColumns(draftPickTableModel{})

type DraftPickRepository struct {
	db *sqlx.DB
}

func NewDraftPickRepository(db *sqlx.DB) *DraftPickRepository {
	return &DraftPickRepository{db: db}
}

func (r *DraftPickRepository) Append(ctx context.Context, pick draftlog.Pick) error {
	if err := pick.Validate(); err != nil {
		return fmt.Errorf("append draft pick: %w", err)
	}

	query, args, err := buildAppendPickQuery(pick)
	if err != nil {
		return fmt.Errorf("build insert draft pick query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert draft pick session_id=%s pick=%d: %w", pick.SessionID, pick.PickNumber, err)
	}
	return nil
}

func (r *DraftPickRepository) ListBySession(ctx context.Context, sessionID string) ([]draftlog.Pick, error) {
	query, args, err := buildListPicksQuery(sessionID)
	if err != nil {
		return nil, fmt.Errorf("build select draft picks query: %w", err)
	}

	var rows []draftPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select draft picks session_id=%s: %w", sessionID, err)
	}

	out := make([]draftlog.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func buildAppendPickQuery(pick draftlog.Pick) (string, []any, error) {
	insertModel := draftPickInsertModel{
		SessionID:  pick.SessionID,
		PickNumber: pick.PickNumber,
		PlayerID:   pick.PlayerID,
		PlayerName: pick.PlayerName,
		Position:   pick.Position,
		Team:       pick.Team,
		DraftedAt:  pick.DraftedAt.UTC(),
	}
	return qb.InsertModel("draft_picks", insertModel,
		`ON CONFLICT (session_id, pick_number) WHERE deleted_at IS NULL DO NOTHING`)
}

func buildListPicksQuery(sessionID string) (string, []any, error) {
	return qb.Select(draftPickSelectColumns...).From("draft_picks").
		Where(
			qb.Eq("session_id", sessionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("pick_number").
		ToSQL()
}

func (m draftPickTableModel) toDomain() draftlog.Pick {
	return draftlog.Pick{
		SessionID:  m.SessionID,
		PickNumber: m.PickNumber,
		PlayerID:   m.PlayerID,
		PlayerName: m.PlayerName,
		Position:   m.Position,
		Team:       m.Team,
		DraftedAt:  m.DraftedAt.UTC(),
	}
}
