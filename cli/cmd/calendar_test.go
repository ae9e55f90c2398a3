package cmd

import (
	"testing"
	"time"

	"stratagix/pkg/content"
)

func TestNavigateKeepsTodaysDayAcrossMonthAndShift(t *testing.T) {
	today := content.MustDate(2025, time.January, 31)

	nav, err := navigate(today, "2025-02", 1)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if want := content.MustDate(2025, time.March, 31); nav.Cursor != want {
		t.Fatalf("cursor = %v, want %v", nav.Cursor, want)
	}
	if nav.Selected != today {
		t.Fatalf("selected = %v, want today", nav.Selected)
	}

	nav, err = navigate(today, "", 1)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if want := content.MustDate(2025, time.February, 28); nav.Cursor != want {
		t.Fatalf("cursor = %v, want %v", nav.Cursor, want)
	}

	if _, err := navigate(today, "2025-13", 0); err == nil {
		t.Fatalf("expected invalid month to fail")
	}
}
