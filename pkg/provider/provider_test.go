package provider

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratagix/pkg/content"
	"stratagix/pkg/logging"
	"stratagix/pkg/trends"
)

type failingProvider struct {
	itemsErr  error
	trendsErr error
}

func (f failingProvider) ListContentItems(context.Context) ([]content.Item, error) {
	return nil, f.itemsErr
}

func (f failingProvider) ListTrendEntries(context.Context) ([]trends.Entry, error) {
	return nil, f.trendsErr
}

func TestLoadSeed(t *testing.T) {
	snap, err := Load(context.Background(), NewMemory())
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Registry.Len())
	assert.Len(t, snap.Trends, 5)

	may := snap.Registry.ItemsInMonth(content.YearMonth{Year: 2025, Month: time.May})
	assert.Len(t, may, 5)
	day := snap.Registry.ItemsOnDay(content.MustDate(2025, time.May, 15))
	require.Len(t, day, 1)
	assert.Equal(t, "Team Culture Video", day[0].Title)
}

func TestSeedSearchMatchesSubstrings(t *testing.T) {
	got := trends.Filter(SeedTrends(), "all", "ai")
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
	assert.Equal(t, "5", got[2].ID)
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	items, err := m.ListContentItems(context.Background())
	require.NoError(t, err)
	items[0].Title = "changed"

	again, err := m.ListContentItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Product Launch Announcement", again[0].Title)
}

func TestLoadRejectsBadData(t *testing.T) {
	dup := append(SeedTrends(), SeedTrends()[0])
	_, err := Load(context.Background(), NewMemoryWith(SeedContent(), dup))
	assert.ErrorIs(t, err, ErrDuplicateTrendID)

	bad := SeedTrends()
	bad[2].Momentum = "unknown"
	_, err = Load(context.Background(), NewMemoryWith(SeedContent(), bad))
	assert.ErrorIs(t, err, trends.ErrInvalidMomentum)

	items := SeedContent()
	items[1].ID = items[0].ID
	_, err = Load(context.Background(), NewMemoryWith(items, SeedTrends()))
	assert.ErrorIs(t, err, content.ErrDuplicateID)
}

func TestLoadWrapsProviderErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), failingProvider{itemsErr: boom})
	assert.ErrorIs(t, err, boom)

	_, err = Load(context.Background(), failingProvider{trendsErr: boom})
	assert.ErrorIs(t, err, boom)
}

const sampleYAML = `
content:
  - id: a1
    title: Spring Campaign Teaser
    type: image
    date: 2026-03-02
    time: "9:00 AM"
    platform: instagram
    status: ready
  - id: a2
    title: Quarterly Report
    type: article
    date: "2026-03-30"
    time: "3:00 PM"
    platform: linkedin
    status: draft
trends:
  - id: t1
    title: Short-Form Video
    category: Content
    platform: both
    relevance: 91
    growth: 30
    momentum: rising
    description: Vertical clips keep climbing.
    hashtags: ["#Reels", "#Shorts"]
    examples:
      - title: Office Tour in 30s
        engagement: 1200
        platform: instagram
`

func TestDecodeYAML(t *testing.T) {
	m, err := Decode(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	snap, err := Load(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Registry.Len())
	item, ok := snap.Registry.Get("a2")
	require.True(t, ok)
	assert.Equal(t, content.MustDate(2026, time.March, 30), item.Date)
	assert.Equal(t, content.StatusDraft, item.Status)

	require.Len(t, snap.Trends, 1)
	assert.Equal(t, []string{"#Reels", "#Shorts"}, snap.Trends[0].Hashtags)
	assert.Equal(t, 1200, snap.Trends[0].Examples[0].Engagement)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("content:\n  - id: x\n    colour: red\n"))
	assert.Error(t, err)
}

func TestDecodeEmptyDocument(t *testing.T) {
	m, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	items, err := m.ListContentItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestEncodeDecodeKeepsSeed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(context.Background(), &buf, NewMemory()))

	m, err := Decode(&buf)
	require.NoError(t, err)
	items, _ := m.ListContentItems(context.Background())
	entries, _ := m.ListTrendEntries(context.Background())
	assert.Equal(t, SeedContent(), items)
	assert.Equal(t, SeedTrends(), entries)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	p, closeFn, err := Open(context.Background(), Config{Source: SourceFile, File: path}, logging.NewDiscardLogger())
	require.NoError(t, err)
	defer closeFn()
	items, err := p.ListContentItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, _, err = Open(context.Background(), Config{Source: SourceFile}, logging.NewDiscardLogger())
	assert.Error(t, err)
}

func TestOpenSources(t *testing.T) {
	p, closeFn, err := Open(context.Background(), Config{}, logging.NewDiscardLogger())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, p)
	assert.NoError(t, closeFn())

	_, closeFn, err = Open(context.Background(), Config{Source: "s3"}, logging.NewDiscardLogger())
	assert.ErrorIs(t, err, ErrUnknownSource)
	assert.NotNil(t, closeFn)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PLANNER_DATA_SOURCE", "file")
	t.Setenv("PLANNER_DATA_FILE", "/etc/planner.yaml")
	cfg := ConfigFromEnv()
	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, "/etc/planner.yaml", cfg.File)
}

func TestPostgresListContentItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "type", "scheduled", "time_label", "platform", "status"}).
		AddRow("1", "Product Launch Announcement", "image", time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), "10:00 AM", "instagram", "scheduled").
		AddRow("3", "Team Culture Video", "video", time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), "4:30 PM", "both", "draft")
	mock.ExpectQuery("SELECT id, title, type, scheduled").WillReturnRows(rows)

	items, err := NewPostgres(db).ListContentItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, content.MustDate(2025, time.May, 15), items[1].Date)
	assert.Equal(t, content.PlatformBoth, items[1].Platform)
	assert.Equal(t, content.TypeImage, items[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListTrendEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "category", "platform", "relevance", "growth", "momentum", "description", "hashtags", "examples"}).
		AddRow("5", "AI & Future of Work", "Industry", "linkedin", 93, 45, "rising", "AI everywhere.",
			"{#AIinBusiness,#FutureOfWork}", []byte(`[{"title":"How We're Implementing AI","engagement":3542,"platform":"linkedin"}]`))
	mock.ExpectQuery("FROM trend_entries").WillReturnRows(rows)

	entries, err := NewPostgres(db).ListTrendEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, trends.CategoryIndustry, e.Category)
	assert.Equal(t, []string{"#AIinBusiness", "#FutureOfWork"}, e.Hashtags)
	require.Len(t, e.Examples, 1)
	assert.Equal(t, 3542, e.Examples[0].Engagement)
	assert.NoError(t, e.Validate())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM content_items").WillReturnError(errors.New("connection reset"))
	_, err = NewPostgres(db).ListContentItems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query content_items")
}
