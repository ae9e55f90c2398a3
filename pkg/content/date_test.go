package content

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"month zero", 2025, 0, 1},
		{"month thirteen", 2025, 13, 1},
		{"day zero", 2025, time.May, 0},
		{"feb 30", 2025, time.February, 30},
		{"feb 29 non leap", 2025, time.February, 29},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDate(tc.year, tc.month, tc.day)
			assert.True(t, errors.Is(err, ErrInvalidDate), "expected ErrInvalidDate, got %v", err)
		})
	}

	d, err := NewDate(2024, time.February, 29)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-05-15")
	require.NoError(t, err)
	assert.Equal(t, MustDate(2025, time.May, 15), d)

	for _, bad := range []string{"", "2025-5-15", "2025-02-30", "15/05/2025"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestDateWeekdayAndCompare(t *testing.T) {
	d := MustDate(2025, time.May, 1)
	assert.Equal(t, time.Thursday, d.Weekday())
	assert.True(t, d.Before(MustDate(2025, time.May, 2)))
	assert.True(t, MustDate(2026, time.January, 1).After(MustDate(2025, time.December, 31)))
	assert.Equal(t, 0, d.Compare(MustDate(2025, time.May, 1)))
	assert.Equal(t, MustDate(2025, time.June, 1), MustDate(2025, time.May, 31).AddDays(1))
}

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	morning := time.Date(2025, time.May, 15, 0, 30, 0, 0, loc)
	evening := time.Date(2025, time.May, 15, 23, 59, 0, 0, loc)
	assert.Equal(t, DateOf(morning), DateOf(evening))
}

func TestDateJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(struct {
		D Date `json:"d"`
	}{D: MustDate(2025, time.May, 10)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2025-05-10"}`, string(raw))

	var out struct {
		D Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2025-12-31"}`), &out))
	assert.Equal(t, MustDate(2025, time.December, 31), out.D)

	assert.Error(t, json.Unmarshal([]byte(`{"d":"2025-13-01"}`), &out))
}

func TestYearMonthBounds(t *testing.T) {
	feb, err := ParseYearMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 29, feb.DaysIn())
	assert.Equal(t, MustDate(2024, time.February, 1), feb.First())
	assert.Equal(t, MustDate(2024, time.February, 29), feb.Last())
	assert.True(t, feb.Contains(MustDate(2024, time.February, 15)))
	assert.False(t, feb.Contains(MustDate(2024, time.March, 1)))

	_, err = ParseYearMonth("2024-13")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = NewYearMonth(2024, 0)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestYearMonthAddMonthsRollsOverYears(t *testing.T) {
	dec := YearMonth{Year: 2025, Month: time.December}
	assert.Equal(t, YearMonth{Year: 2026, Month: time.January}, dec.AddMonths(1))
	assert.Equal(t, YearMonth{Year: 2025, Month: time.November}, dec.AddMonths(-1))

	jan := YearMonth{Year: 2026, Month: time.January}
	assert.Equal(t, YearMonth{Year: 2025, Month: time.December}, jan.AddMonths(-1))
	assert.Equal(t, YearMonth{Year: 2024, Month: time.January}, jan.AddMonths(-24))
	assert.Equal(t, YearMonth{Year: 2027, Month: time.March}, jan.AddMonths(14))

	// No month is skipped when stepping one at a time across a boundary.
	ym := YearMonth{Year: 2025, Month: time.October}
	var seen []string
	for i := 0; i < 5; i++ {
		seen = append(seen, ym.String())
		ym = ym.AddMonths(1)
	}
	assert.Equal(t, []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02"}, seen)
}

func TestAddMonthsClampedPreservesDayWherePossible(t *testing.T) {
	assert.Equal(t, MustDate(2025, time.June, 15), AddMonthsClamped(MustDate(2025, time.May, 15), 1))
	assert.Equal(t, MustDate(2025, time.February, 28), AddMonthsClamped(MustDate(2025, time.January, 31), 1))
	assert.Equal(t, MustDate(2024, time.February, 29), AddMonthsClamped(MustDate(2024, time.March, 31), -1))
	assert.Equal(t, MustDate(2026, time.January, 31), AddMonthsClamped(MustDate(2025, time.December, 31), 1))
}
