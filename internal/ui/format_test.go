package ui

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Time{}, ""},
		{now.Add(-10 * time.Second), "11:59:50 (now)"},
		{now.Add(-5 * time.Minute), "11:55:00 (5m ago)"},
		{now.Add(-3 * time.Hour), "09:00:00 (3h ago)"},
		{now.Add(-48 * time.Hour), "12:00:00"},
	}
	for _, tt := range tests {
		if got := formatTimestamp(tt.at, now); got != tt.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"Shrimp Chow Fun", 10, "Shrimp ..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, ""},
		{"Crème brûlée", 8, "Crème..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("/home/user/.local/state/platter/platter.log", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20 (%q)", len([]rune(got)), got)
	}
	if got[len(got)-4:] != ".log" {
		t.Fatalf("truncateMiddle dropped the file name: %q", got)
	}
}
