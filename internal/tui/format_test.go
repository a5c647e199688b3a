package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/pomoflip/internal/clock"
	"github.com/akyairhashvil/pomoflip/internal/display"
	"github.com/akyairhashvil/pomoflip/internal/pomodoro"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{25 * time.Minute, "25m"},
		{2 * time.Hour, "2h"},
		{135 * time.Minute, "2h 15m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatTimeRemaining(t *testing.T) {
	if got := FormatTimeRemaining(-time.Second); got != "00:00" {
		t.Fatalf("expected 00:00, got %q", got)
	}
	if got := FormatTimeRemaining(90 * time.Second); got != "01:30" {
		t.Fatalf("expected 01:30, got %q", got)
	}
}

func TestFormatPhaseStatus(t *testing.T) {
	loop := clock.New(epoch)
	cfg := pomodoro.DefaultConfig()
	c, err := pomodoro.New(loop, display.NewBoard(cfg.Regions()...), cfg, nil)
	if err != nil {
		t.Fatalf("pomodoro.New failed: %v", err)
	}
	if got := FormatPhaseStatus(c); got != "Ready" {
		t.Fatalf("expected Ready, got %q", got)
	}
	_ = c.Start()
	loop.Advance(35 * time.Second)
	want := "Phase B of 30s/10s - 00:05 remaining, 1 done"
	if got := FormatPhaseStatus(c); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
