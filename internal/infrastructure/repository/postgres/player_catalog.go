package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type nflPlayerTableModel struct {
	PlayerID             int64           `db:"player_id"`
	Name                 string          `db:"name"`
	Position             string          `db:"position"`
	Team                 string          `db:"team"`
	PhotoURL             string          `db:"photo_url"`
	AverageDraftPosition sql.NullFloat64 `db:"average_draft_position"`
	Stats                []byte          `db:"stats"`
	Projections          []byte          `db:"projections"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

type playerNewsTableModel struct {
	NewsID   int64  `db:"news_id"`
	PlayerID int64  `db:"player_id"`
	Title    string `db:"title"`
	Content  string `db:"content"`
	Source   string `db:"source"`
	URL      string `db:"url"`
	Updated  string `db:"updated"`
}

var (
	nflPlayerSelectColumns  = qb.MustColumns(nflPlayerTableModel{})
	playerNewsSelectColumns = qb.MustColumns(playerNewsTableModel{})
)

// PlayerCatalog serves the player universe stored in Postgres. Stat lines
// live in jsonb columns as raw vendor objects.
type PlayerCatalog struct {
	db *sqlx.DB
}

func NewPlayerCatalog(db *sqlx.DB) *PlayerCatalog {
	return &PlayerCatalog{db: db}
}

func (c *PlayerCatalog) ListPlayers(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(nflPlayerSelectColumns...).From("nfl_players").
		Where(qb.IsNull("deleted_at")).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select nfl players query: %w", err)
	}

	var rows []nflPlayerTableModel
	if err := c.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select nfl players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *PlayerCatalog) ListNews(ctx context.Context, playerID int64) ([]player.News, error) {
	query, args, err := qb.Select(playerNewsSelectColumns...).From("player_news").
		Where(
			qb.Eq("player_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("updated DESC", "news_id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player news query: %w", err)
	}

	var rows []playerNewsTableModel
	if err := c.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player news player_id=%d: %w", playerID, err)
	}

	out := make([]player.News, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.News{
			NewsID:   row.NewsID,
			PlayerID: row.PlayerID,
			Title:    row.Title,
			Content:  row.Content,
			Source:   row.Source,
			URL:      row.URL,
			Updated:  row.Updated,
		})
	}
	return out, nil
}

func (m nflPlayerTableModel) toDomain() (player.Player, error) {
	stats, err := decodeStatLine(m.Stats)
	if err != nil {
		return player.Player{}, fmt.Errorf("decode stats player_id=%d: %w", m.PlayerID, err)
	}
	projections, err := decodeStatLine(m.Projections)
	if err != nil {
		return player.Player{}, fmt.Errorf("decode projections player_id=%d: %w", m.PlayerID, err)
	}

	p := player.Player{
		ID:          m.PlayerID,
		Name:        m.Name,
		Position:    player.Position(m.Position),
		Team:        m.Team,
		PhotoURL:    m.PhotoURL,
		Stats:       stats,
		Projections: projections,
	}
	if m.AverageDraftPosition.Valid {
		p.AverageDraftPosition = m.AverageDraftPosition.Float64
	}
	return p, nil
}

func decodeStatLine(raw []byte) (player.StatLine, error) {
	line := player.StatLine{}
	if len(raw) == 0 {
		return line, nil
	}
	if err := sonic.Unmarshal(raw, &line); err != nil {
		return nil, err
	}
	if line == nil {
		line = player.StatLine{}
	}
	return line, nil
}

func encodeStatLine(line player.StatLine) ([]byte, error) {
	if line == nil {
		line = player.StatLine{}
	}
	return sonic.Marshal(line)
}
