// Package calendar lays a month of scheduled content out as a display grid.
package calendar

import (
	"fmt"
	"strings"

	"stratagix/pkg/content"
)

// DefaultPreviewLimit is how many items a cell previews before collapsing the
// rest into an overflow count.
const DefaultPreviewLimit = 2

// View is a display-mode flag. Every view shares the same grid layout.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
	ViewList  View = "list"
)

// ParseView accepts a view name case-insensitively; empty means month.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ViewMonth, nil
	case ViewMonth, ViewWeek, ViewDay, ViewList:
		return v, nil
	default:
		return "", fmt.Errorf("unknown calendar view %q", s)
	}
}

// DayLookup is the registry query the builder needs.
type DayLookup interface {
	ItemsOnDay(d content.Date) []content.Item
}

// Options is the complete input of Build. The caller owns all of this state.
type Options struct {
	Month    content.YearMonth
	Today    content.Date
	Selected content.Date
	View     View
	// PreviewLimit 0 uses DefaultPreviewLimit; a negative value disables truncation.
	PreviewLimit int
}

// Cell is one slot in the grid: a leading blank or a calendar day.
type Cell struct {
	Blank    bool           `json:"blank"`
	Date     content.Date   `json:"date,omitempty"`
	Today    bool           `json:"today"`
	Selected bool           `json:"selected"`
	Items    []content.Item `json:"-"`
	Preview  []content.Item `json:"preview,omitempty"`
	Overflow int            `json:"overflow"`
	Total    int            `json:"total"`
}

// Grid is a month laid out in Sunday-first week rows. Only leading blanks are
// emitted; the last row may be partial.
type Grid struct {
	Month         content.YearMonth `json:"month"`
	View          View              `json:"view"`
	LeadingBlanks int               `json:"leading_blanks"`
	Cells         []Cell            `json:"cells"`
	Prev          content.YearMonth `json:"prev"`
	Next          content.YearMonth `json:"next"`
}

// Weekdays are the column headers, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Build produces the grid for opts.Month.
func Build(lookup DayLookup, opts Options) (Grid, error) {
	if !opts.Month.Valid() {
		return Grid{}, fmt.Errorf("%w: month %s", content.ErrInvalidDate, opts.Month)
	}
	view := opts.View
	if view == "" {
		view = ViewMonth
	}
	limit := opts.PreviewLimit
	if limit == 0 {
		limit = DefaultPreviewLimit
	}

	first := opts.Month.First()
	days := opts.Month.DaysIn()
	blanks := int(first.Weekday())

	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 0; day < days; day++ {
		date := first.AddDays(day)
		items := lookup.ItemsOnDay(date)
		preview := items
		if limit > 0 && len(preview) > limit {
			preview = preview[:limit]
		}
		cells = append(cells, Cell{
			Date:     date,
			Today:    date == opts.Today,
			Selected: !opts.Selected.IsZero() && date == opts.Selected,
			Items:    items,
			Preview:  preview,
			Overflow: len(items) - len(preview),
			Total:    len(items),
		})
	}

	return Grid{
		Month:         opts.Month,
		View:          view,
		LeadingBlanks: blanks,
		Cells:         cells,
		Prev:          opts.Month.AddMonths(-1),
		Next:          opts.Month.AddMonths(1),
	}, nil
}

// Rows splits the cells into week rows of seven; the final row may be shorter.
func (g Grid) Rows() [][]Cell {
	var rows [][]Cell
	for start := 0; start < len(g.Cells); start += 7 {
		end := start + 7
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		rows = append(rows, g.Cells[start:end])
	}
	return rows
}

// Day returns the cell for d, if d is in the grid's month.
func (g Grid) Day(d content.Date) (Cell, bool) {
	if !g.Month.Contains(d) {
		return Cell{}, false
	}
	idx := g.LeadingBlanks + d.Day - 1
	if idx < 0 || idx >= len(g.Cells) {
		return Cell{}, false
	}
	return g.Cells[idx], true
}
