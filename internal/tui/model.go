// Package tui renders the timers in the terminal. The bubbletea update loop
// is the only goroutine that touches the app: every tick advances the app's
// clock.Loop to the tick's wall time.
package tui

import (
	"time"

	"github.com/akyairhashvil/pomoflip/internal/app"
	"github.com/akyairhashvil/pomoflip/internal/config"
	"github.com/akyairhashvil/pomoflip/internal/util"
	"github.com/akyairhashvil/pomoflip/internal/wakelock"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type Model struct {
	app       *app.App
	keys      *HandlerRegistry
	help      help.Model
	progress  progress.Model
	wake      wakelock.Status
	themeName string
	logger    *zap.Logger
	quitting  bool
	width     int
	height    int
}

type Option func(*Model)

func WithWakeLock(st wakelock.Status) Option {
	return func(m *Model) { m.wake = st }
}

// WithTheme selects a theme by key. Unknown keys keep the default.
func WithTheme(name string) Option {
	return func(m *Model) {
		if SetTheme(name) {
			m.themeName = name
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) { m.logger = util.OrNop(logger) }
}

func NewModel(a *app.App, opts ...Option) Model {
	m := Model{
		app:       a,
		keys:      defaultRegistry(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
		themeName: "default",
		logger:    zap.NewNop(),
	}
	SetTheme(m.themeName)
	m.progress.Width = config.TargetRegionWidth
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		next, cmd, handled := m.keys.Handle(m, msg)
		if handled {
			next.logger.Debug("key", zap.String("key", msg.String()))
		}
		return next, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.progress.Width = util.Clamp(m.width-4, config.MinRegionWidth, 2*config.TargetRegionWidth)
	m.help.Width = m.width
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	m.app.AdvanceTo(time.Time(msg))
	return m, tickCmd()
}

// regionWidth is the width of one timer box for the current window.
func (m Model) regionWidth() int {
	if m.width <= 0 {
		return config.TargetRegionWidth
	}
	avail := m.width - 4
	if !m.compact() {
		avail = (avail - 1) / 2
	}
	return util.Clamp(avail, config.MinRegionWidth, config.TargetRegionWidth)
}

func (m Model) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}
