package tui

import (
	"fmt"

	"github.com/akyairhashvil/pomoflip/internal/config"
	"github.com/akyairhashvil/pomoflip/internal/pomodoro"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := CurrentTheme
	snap := m.app.Snapshot()
	width := m.regionWidth()

	header := lipgloss.JoinVertical(lipgloss.Left,
		t.Header.Render(config.AppName)+" "+t.Dim.Render(versionLabel()),
		t.Highlight.Render(FormatPhaseStatus(m.app.Pomodoro)),
	)

	timerA := m.renderRegion("Timer 1", snap.Timer1, snap.Phase == pomodoro.PhaseA, width)
	timerB := m.renderRegion("Timer 2", snap.Timer2, snap.Phase == pomodoro.PhaseB, width)
	var timers string
	if m.compact() {
		timers = lipgloss.JoinVertical(lipgloss.Left, timerA, timerB)
	} else {
		timers = lipgloss.JoinHorizontal(lipgloss.Top, timerA, " ", timerB)
	}

	bar := m.progress.ViewAs(m.app.Pomodoro.Progress())
	message := " "
	if snap.Message != "" {
		message = t.Message.Render(ansi.Truncate(snap.Message, 2*width, config.TruncationSuffix))
	}

	clocks := lipgloss.JoinVertical(lipgloss.Left,
		t.Label.Render("Clock     ")+snap.Clock,
		t.Label.Render("Session   ")+snap.Session,
		t.Label.Render("Stopwatch ")+snap.Stopwatch+" "+t.Dim.Render(m.app.Stopwatch.State().String()),
	)

	footer := lipgloss.JoinVertical(lipgloss.Left,
		m.help.View(m.keys),
		t.Dim.Render(m.wakeLabel()+" · theme "+CurrentTheme.Name),
	)

	return t.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		header, "", timers, bar, message, "", clocks, "", footer))
}

func (m Model) renderRegion(title, text string, active bool, width int) string {
	t := CurrentTheme
	style := t.Inactive
	if active {
		style = t.Active
		title += " ●"
	}
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width - 2)
	return box.Render(t.Label.Render(ansi.Truncate(title, inner, config.TruncationSuffix)) + "\n" +
		style.Render(ansi.Truncate(text, inner, config.TruncationSuffix)))
}

func (m Model) wakeLabel() string {
	switch {
	case !m.wake.Supported:
		return "wake lock unsupported"
	case m.wake.Active:
		return "wake lock on"
	default:
		return fmt.Sprintf("wake lock off (released=%t)", m.wake.Released)
	}
}
