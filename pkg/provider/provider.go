// Package provider supplies the read-only content and trend data the planner
// works from. Implementations: the built-in seed set, a YAML file and Postgres.
package provider

import (
	"context"
	"errors"
	"fmt"

	"stratagix/pkg/config"
	"stratagix/pkg/content"
	"stratagix/pkg/database"
	"stratagix/pkg/logging"
	"stratagix/pkg/trends"
)

// Provider lists the planner's source data.
type Provider interface {
	ListContentItems(ctx context.Context) ([]content.Item, error)
	ListTrendEntries(ctx context.Context) ([]trends.Entry, error)
}

// Source names a Provider implementation in configuration.
type Source string

const (
	SourceMemory   Source = "memory"
	SourceFile     Source = "file"
	SourcePostgres Source = "postgres"
)

var (
	ErrUnknownSource    = errors.New("unknown data source")
	ErrDuplicateTrendID = errors.New("duplicate trend id")
)

// Snapshot is an immutable, validated view of a provider's data.
type Snapshot struct {
	Registry *content.Registry
	Trends   []trends.Entry
}

// Load reads everything from p and validates it.
func Load(ctx context.Context, p Provider) (*Snapshot, error) {
	items, err := p.ListContentItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	reg, err := content.NewRegistry(items)
	if err != nil {
		return nil, err
	}

	entries, err := p.ListTrendEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trend entries: %w", err)
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("trend %d: %w", i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTrendID, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return &Snapshot{Registry: reg, Trends: append([]trends.Entry(nil), entries...)}, nil
}

// Config selects and configures a provider.
type Config struct {
	Source Source
	File   string
	DB     database.Config
}

// ConfigFromEnv reads PLANNER_DATA_SOURCE, PLANNER_DATA_FILE and the database settings.
func ConfigFromEnv() Config {
	return Config{
		Source: Source(config.GetEnv("PLANNER_DATA_SOURCE", string(SourceMemory))),
		File:   config.GetEnv("PLANNER_DATA_FILE", ""),
		DB:     database.ConfigFromEnv(),
	}
}

// Open builds the configured provider. The returned close function releases
// any connection the provider holds and is never nil.
func Open(ctx context.Context, cfg Config, logger logging.Logger) (Provider, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Source {
	case SourceMemory, "":
		return NewMemory(), noop, nil
	case SourceFile:
		p, err := OpenFile(cfg.File)
		if err != nil {
			return nil, noop, err
		}
		return p, noop, nil
	case SourcePostgres:
		db, err := database.Connect(ctx, cfg.DB, logger)
		if err != nil {
			return nil, noop, err
		}
		return NewPostgres(db), db.Close, nil
	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}
