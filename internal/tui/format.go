package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomoflip/internal/pomodoro"
)

// FormatDuration formats a duration for display (e.g., "2h 15m", "45s").
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTimeRemaining formats remaining time as MM:SS.
func FormatTimeRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return "00:00"
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatPhaseStatus describes the active phase for the header.
func FormatPhaseStatus(c *pomodoro.Coordinator) string {
	if !c.Started() {
		return "Ready"
	}
	cfg := c.Config()
	return fmt.Sprintf("Phase %s of %s/%s - %s remaining, %d done",
		c.Phase(),
		FormatDuration(cfg.PhaseADuration),
		FormatDuration(cfg.PhaseBDuration),
		FormatTimeRemaining(c.Remaining()),
		c.Cycles())
}
