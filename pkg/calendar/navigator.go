package calendar

import (
	"stratagix/pkg/content"
)

// Navigator is the calendar state an interactive shell carries between
// interactions: the month being shown, the selected day and the view.
// It is a plain value; every method returns the updated copy.
type Navigator struct {
	// Cursor anchors the visible month. Its day is kept so that month steps
	// preserve day-of-month where the target month allows it.
	Cursor   content.Date
	Selected content.Date
	View     View
}

// NewNavigator starts on today's month with today selected.
func NewNavigator(today content.Date) Navigator {
	return Navigator{Cursor: today, Selected: today, View: ViewMonth}
}

// Month is the month currently shown.
func (n Navigator) Month() content.YearMonth {
	return n.Cursor.YearMonth()
}

// Next advances one month.
func (n Navigator) Next() Navigator {
	return n.Shift(1)
}

// Prev goes back one month.
func (n Navigator) Prev() Navigator {
	return n.Shift(-1)
}

// Shift moves the visible month by whole months.
func (n Navigator) Shift(months int) Navigator {
	n.Cursor = content.AddMonthsClamped(n.Cursor, months)
	return n
}

// ShowMonth moves the visible month to ym, keeping the cursor's day of
// month where ym has it.
func (n Navigator) ShowMonth(ym content.YearMonth) Navigator {
	cur := n.Month()
	return n.Shift((ym.Year-cur.Year)*12 + int(ym.Month-cur.Month))
}

// Select marks d as the selected day. The visible month is unchanged.
func (n Navigator) Select(d content.Date) Navigator {
	n.Selected = d
	return n
}

// SetView switches the display mode.
func (n Navigator) SetView(v View) Navigator {
	n.View = v
	return n
}

// Options builds the grid input for the current state.
func (n Navigator) Options(today content.Date, previewLimit int) Options {
	return Options{
		Month:        n.Month(),
		Today:        today,
		Selected:     n.Selected,
		View:         n.View,
		PreviewLimit: previewLimit,
	}
}
