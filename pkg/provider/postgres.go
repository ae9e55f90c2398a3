package provider

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"stratagix/pkg/content"
	"stratagix/pkg/trends"
)

// Postgres reads planner data from the content_items and trend_entries tables.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const listContentQuery = `
	SELECT id, title, type, scheduled, time_label, platform, status
	FROM content_items
	ORDER BY position, id`

const listTrendsQuery = `
	SELECT id, title, category, platform, relevance, growth, momentum, description, hashtags, examples
	FROM trend_entries
	ORDER BY position, id`

func (p *Postgres) ListContentItems(ctx context.Context) ([]content.Item, error) {
	rows, err := p.db.QueryContext(ctx, listContentQuery)
	if err != nil {
		return nil, fmt.Errorf("query content_items: %w", err)
	}
	defer rows.Close()

	var items []content.Item
	for rows.Next() {
		var (
			it        content.Item
			scheduled time.Time
		)
		if err := rows.Scan(&it.ID, &it.Title, &it.Type, &scheduled, &it.Time, &it.Platform, &it.Status); err != nil {
			return nil, fmt.Errorf("scan content_items: %w", err)
		}
		it.Date = content.DateOf(scheduled)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content_items: %w", err)
	}
	return items, nil
}

func (p *Postgres) ListTrendEntries(ctx context.Context) ([]trends.Entry, error) {
	rows, err := p.db.QueryContext(ctx, listTrendsQuery)
	if err != nil {
		return nil, fmt.Errorf("query trend_entries: %w", err)
	}
	defer rows.Close()

	var entries []trends.Entry
	for rows.Next() {
		var (
			e        trends.Entry
			hashtags pq.StringArray
			examples []byte
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Category, &e.Platform, &e.Relevance, &e.Growth,
			&e.Momentum, &e.Description, &hashtags, &examples); err != nil {
			return nil, fmt.Errorf("scan trend_entries: %w", err)
		}
		e.Hashtags = []string(hashtags)
		if len(examples) > 0 {
			if err := json.Unmarshal(examples, &e.Examples); err != nil {
				return nil, fmt.Errorf("decode examples for trend %s: %w", e.ID, err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trend_entries: %w", err)
	}
	return entries, nil
}
