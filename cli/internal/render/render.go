// Package render formats planner data for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"stratagix/pkg/calendar"
	"stratagix/pkg/content"
	"stratagix/pkg/trends"
)

// Printer writes text views, optionally with ANSI colors.
type Printer struct {
	w        io.Writer
	today    *color.Color
	selected *color.Color
	muted    *color.Color
	heading  *color.Color
}

func NewPrinter(w io.Writer, colorize bool) *Printer {
	p := &Printer{
		w:        w,
		today:    color.New(color.FgGreen, color.Bold),
		selected: color.New(color.ReverseVideo),
		muted:    color.New(color.Faint),
		heading:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.today, p.selected, p.muted, p.heading} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Calendar draws the month grid followed by the previews of busy days.
//
// Each cell is a day number with a marker: '*' today, brackets for the
// selected day, and a dot per previewed item plus '+' on overflow.
func (p *Printer) Calendar(g calendar.Grid) {
	title := fmt.Sprintf("%s %d", g.Month.Month, g.Month.Year)
	p.heading.Fprintf(p.w, "%s  (%s view)\n", title, g.View)
	for _, wd := range calendar.Weekdays {
		fmt.Fprintf(p.w, "%-7s", wd)
	}
	fmt.Fprintln(p.w)

	for _, row := range g.Rows() {
		var line strings.Builder
		for _, cell := range row {
			line.WriteString(p.cell(cell))
		}
		fmt.Fprintln(p.w, strings.TrimRight(line.String(), " "))
	}

	busy := false
	for _, cell := range g.Cells {
		if cell.Blank || cell.Total == 0 {
			continue
		}
		if !busy {
			fmt.Fprintln(p.w)
			busy = true
		}
		fmt.Fprintf(p.w, "%s %2d:", cell.Date.Month.String()[:3], cell.Date.Day)
		for i, it := range cell.Preview {
			sep := " "
			if i > 0 {
				sep = "; "
			}
			fmt.Fprintf(p.w, "%s%s", sep, it.Title)
		}
		if cell.Overflow > 0 {
			p.muted.Fprintf(p.w, " (+%d more)", cell.Overflow)
		}
		fmt.Fprintln(p.w)
	}
	p.muted.Fprintf(p.w, "prev: %s  next: %s\n", g.Prev, g.Next)
}

func (p *Printer) cell(c calendar.Cell) string {
	const width = 7
	if c.Blank {
		return strings.Repeat(" ", width)
	}
	label := fmt.Sprintf("%2d", c.Date.Day)
	switch {
	case c.Selected:
		label = "[" + label + "]"
	case c.Today:
		label = " " + label + "*"
	default:
		label = " " + label + " "
	}
	marks := strings.Repeat(".", len(c.Preview))
	if c.Overflow > 0 {
		marks += "+"
	}
	text := fmt.Sprintf("%-*s", width, label+marks)

	switch {
	case c.Selected:
		return p.selected.Sprint(text)
	case c.Today:
		return p.today.Sprint(text)
	default:
		return text
	}
}

// Items lists content items one per line.
func (p *Printer) Items(items []content.Item) {
	if len(items) == 0 {
		p.muted.Fprintln(p.w, "No scheduled content")
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTIME\tTITLE\tTYPE\tPLATFORM\tSTATUS")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", it.Date, it.Time, it.Title, it.Type, it.Platform, it.Status)
	}
	_ = tw.Flush()
}

// DayHeading prints a long-form date line.
func (p *Printer) DayHeading(d content.Date) {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	p.heading.Fprintln(p.w, t.Format("Monday, January 2, 2006"))
}

// Trends lists matching trends or the empty state.
func (p *Printer) Trends(entries []trends.Entry, counts map[trends.Category]int) {
	var tabs []string
	for _, c := range trends.Categories {
		tabs = append(tabs, fmt.Sprintf("%s (%d)", c, counts[c]))
	}
	p.muted.Fprintln(p.w, strings.Join(tabs, "  "))

	if len(entries) == 0 {
		p.heading.Fprintln(p.w, trends.EmptyStateTitle)
		fmt.Fprintln(p.w, trends.EmptyStateMessage)
		return
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPLATFORM\tRELEVANCE\tGROWTH\tMOMENTUM")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\t+%d%%\t%s\n", e.ID, e.Title, e.Category, e.Platform, e.Relevance, e.Growth, e.Momentum)
	}
	_ = tw.Flush()
}

// Trend prints the detail view of one trend.
func (p *Printer) Trend(e trends.Entry) {
	p.heading.Fprintln(p.w, e.Title)
	fmt.Fprintf(p.w, "%s | %s | relevance %d%% | growth +%d%% | %s\n", e.Category, e.Platform, e.Relevance, e.Growth, e.Momentum)
	fmt.Fprintln(p.w, e.Description)
	fmt.Fprintln(p.w, strings.Join(e.Hashtags, " "))
	for _, ex := range e.Examples {
		fmt.Fprintf(p.w, "  - %q on %s: %d engagements\n", ex.Title, ex.Platform, ex.Engagement)
	}
}
