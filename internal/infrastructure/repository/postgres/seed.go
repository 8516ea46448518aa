package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
)

const upsertNFLPlayerSQL = `
INSERT INTO nfl_players (player_id, name, position, team, photo_url, average_draft_position, stats, projections, updated_at)
VALUES (:player_id, :name, :position, :team, :photo_url, :average_draft_position, :stats, :projections, NOW())
ON CONFLICT (player_id) DO UPDATE SET
    name = EXCLUDED.name,
    position = EXCLUDED.position,
    team = EXCLUDED.team,
    photo_url = EXCLUDED.photo_url,
    average_draft_position = EXCLUDED.average_draft_position,
    stats = EXCLUDED.stats,
    projections = EXCLUDED.projections,
    updated_at = NOW(),
    deleted_at = NULL`

const insertPlayerNewsSQL = `
INSERT INTO player_news (news_id, player_id, title, content, source, url, updated)
VALUES (:news_id, :player_id, :title, :content, :source, :url, :updated)
ON CONFLICT (news_id) DO NOTHING`

// BootstrapSeed loads players and news into an empty catalog. A catalog that
// already holds players is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, players []player.Player, news []player.News) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM nfl_players WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count nfl players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}
	return UpsertCatalog(ctx, db, players, news)
}

// UpsertCatalog writes players and news in one transaction.
func UpsertCatalog(ctx context.Context, db *sqlx.DB, players []player.Player, news []player.News) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range players {
		params, err := nflPlayerParams(p)
		if err != nil {
			return err
		}
		sqlQuery, args, err := sqlx.Named(upsertNFLPlayerSQL, params)
		if err != nil {
			return fmt.Errorf("bind upsert player %d query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("upsert player %d: %w", p.ID, err)
		}
	}

	for _, n := range news {
		sqlQuery, args, err := sqlx.Named(insertPlayerNewsSQL, map[string]any{
			"news_id":   n.NewsID,
			"player_id": n.PlayerID,
			"title":     n.Title,
			"content":   n.Content,
			"source":    n.Source,
			"url":       n.URL,
			"updated":   n.Updated,
		})
		if err != nil {
			return fmt.Errorf("bind insert news %d query: %w", n.NewsID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert news %d: %w", n.NewsID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog tx: %w", err)
	}
	return nil
}

func nflPlayerParams(p player.Player) (map[string]any, error) {
	stats, err := encodeStatLine(p.Stats)
	if err != nil {
		return nil, fmt.Errorf("encode stats player_id=%d: %w", p.ID, err)
	}
	projections, err := encodeStatLine(p.Projections)
	if err != nil {
		return nil, fmt.Errorf("encode projections player_id=%d: %w", p.ID, err)
	}

	var adp any
	if p.AverageDraftPosition > 0 {
		adp = p.AverageDraftPosition
	}
	return map[string]any{
		"player_id":              p.ID,
		"name":                   p.Name,
		"position":               string(p.Position),
		"team":                   p.Team,
		"photo_url":              p.PhotoURL,
		"average_draft_position": adp,
		"stats":                  string(stats),
		"projections":            string(projections),
	}, nil
}
