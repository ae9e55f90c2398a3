package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratagix/pkg/content"
)

func seedRegistry(t *testing.T) *content.Registry {
	t.Helper()
	reg, err := content.NewRegistry([]content.Item{
		{ID: "1", Title: "Product Launch Announcement", Type: content.TypeImage, Date: content.MustDate(2025, time.May, 10), Platform: content.PlatformInstagram, Status: content.StatusScheduled},
		{ID: "2", Title: "Industry Insights Article", Type: content.TypeArticle, Date: content.MustDate(2025, time.May, 12), Platform: content.PlatformLinkedIn, Status: content.StatusScheduled},
		{ID: "3", Title: "Team Culture Video", Type: content.TypeVideo, Date: content.MustDate(2025, time.May, 15), Platform: content.PlatformBoth, Status: content.StatusDraft},
		{ID: "3b", Title: "Team Culture Stills", Type: content.TypeImage, Date: content.MustDate(2025, time.May, 15), Platform: content.PlatformInstagram, Status: content.StatusDraft},
		{ID: "3c", Title: "Team Culture Recap", Type: content.TypeArticle, Date: content.MustDate(2025, time.May, 15), Platform: content.PlatformLinkedIn, Status: content.StatusReady},
		{ID: "4", Title: "Customer Testimonial", Type: content.TypeImage, Date: content.MustDate(2025, time.May, 18), Platform: content.PlatformInstagram, Status: content.StatusScheduled},
	})
	require.NoError(t, err)
	return reg
}

func TestBuildCellCountMatchesBlanksPlusDays(t *testing.T) {
	reg := seedRegistry(t)
	for year := 2023; year <= 2026; year++ {
		for m := time.January; m <= time.December; m++ {
			ym := content.YearMonth{Year: year, Month: m}
			grid, err := Build(reg, Options{Month: ym})
			require.NoError(t, err)

			blanks := int(ym.First().Weekday())
			assert.Equal(t, blanks, grid.LeadingBlanks, ym.String())
			assert.Len(t, grid.Cells, ym.DaysIn()+blanks, ym.String())
			for i := 0; i < blanks; i++ {
				assert.True(t, grid.Cells[i].Blank)
			}
			assert.Equal(t, ym.First(), grid.Cells[blanks].Date)
			assert.Equal(t, ym.Last(), grid.Cells[len(grid.Cells)-1].Date)
		}
	}
}

func TestBuildMay2025(t *testing.T) {
	reg := seedRegistry(t)
	grid, err := Build(reg, Options{
		Month:    content.YearMonth{Year: 2025, Month: time.May},
		Today:    content.MustDate(2025, time.May, 12),
		Selected: content.MustDate(2025, time.May, 15),
	})
	require.NoError(t, err)

	// May 1st 2025 is a Thursday.
	assert.Equal(t, 4, grid.LeadingBlanks)
	assert.Len(t, grid.Cells, 35)
	assert.Equal(t, ViewMonth, grid.View)
	assert.Equal(t, content.YearMonth{Year: 2025, Month: time.April}, grid.Prev)
	assert.Equal(t, content.YearMonth{Year: 2025, Month: time.June}, grid.Next)

	today, ok := grid.Day(content.MustDate(2025, time.May, 12))
	require.True(t, ok)
	assert.True(t, today.Today)
	assert.False(t, today.Selected)
	assert.Equal(t, 1, today.Total)

	busy, ok := grid.Day(content.MustDate(2025, time.May, 15))
	require.True(t, ok)
	assert.True(t, busy.Selected)
	assert.False(t, busy.Today)
	assert.Equal(t, 3, busy.Total)
	require.Len(t, busy.Preview, 2)
	assert.Equal(t, "3", busy.Preview[0].ID)
	assert.Equal(t, "3b", busy.Preview[1].ID)
	assert.Equal(t, 1, busy.Overflow)
	assert.Len(t, busy.Items, 3)

	quiet, ok := grid.Day(content.MustDate(2025, time.May, 16))
	require.True(t, ok)
	assert.Empty(t, quiet.Items)
	assert.Zero(t, quiet.Overflow)

	todayCount, selectedCount := 0, 0
	for _, c := range grid.Cells {
		if c.Today {
			todayCount++
		}
		if c.Selected {
			selectedCount++
		}
	}
	assert.Equal(t, 1, todayCount)
	assert.Equal(t, 1, selectedCount)
}

func TestBuildPreviewLimitIsOverridable(t *testing.T) {
	reg := seedRegistry(t)
	may := content.YearMonth{Year: 2025, Month: time.May}
	day := content.MustDate(2025, time.May, 15)

	unlimited, err := Build(reg, Options{Month: may, PreviewLimit: -1})
	require.NoError(t, err)
	cell, _ := unlimited.Day(day)
	assert.Len(t, cell.Preview, 3)
	assert.Zero(t, cell.Overflow)

	one, err := Build(reg, Options{Month: may, PreviewLimit: 1})
	require.NoError(t, err)
	cell, _ = one.Day(day)
	assert.Len(t, cell.Preview, 1)
	assert.Equal(t, 2, cell.Overflow)
}

func TestBuildRejectsInvalidMonth(t *testing.T) {
	_, err := Build(seedRegistry(t), Options{Month: content.YearMonth{Year: 2025, Month: 13}})
	assert.ErrorIs(t, err, content.ErrInvalidDate)
}

func TestBuildViewIsOnlyAFlag(t *testing.T) {
	reg := seedRegistry(t)
	may := content.YearMonth{Year: 2025, Month: time.May}
	month, err := Build(reg, Options{Month: may, View: ViewMonth})
	require.NoError(t, err)
	for _, v := range []View{ViewWeek, ViewDay, ViewList} {
		other, err := Build(reg, Options{Month: may, View: v})
		require.NoError(t, err)
		assert.Equal(t, v, other.View)
		assert.Equal(t, month.Cells, other.Cells)
	}
}

func TestRowsArePartialAtTheEnd(t *testing.T) {
	grid, err := Build(seedRegistry(t), Options{Month: content.YearMonth{Year: 2025, Month: time.May}})
	require.NoError(t, err)
	rows := grid.Rows()
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.LessOrEqual(t, len(row), 7)
	}

	// February 2026 starts on a Sunday and has 28 days: exactly four full rows.
	feb, err := Build(seedRegistry(t), Options{Month: content.YearMonth{Year: 2026, Month: time.February}})
	require.NoError(t, err)
	assert.Zero(t, feb.LeadingBlanks)
	assert.Len(t, feb.Rows(), 4)
}

func TestParseView(t *testing.T) {
	v, err := ParseView("")
	require.NoError(t, err)
	assert.Equal(t, ViewMonth, v)
	v, err = ParseView("Week")
	require.NoError(t, err)
	assert.Equal(t, ViewWeek, v)
	_, err = ParseView("year")
	assert.Error(t, err)
}
