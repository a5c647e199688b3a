package tui

import (
	"sort"

	"github.com/akyairhashvil/pomoflip/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model) (Model, tea.Cmd)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Priority int
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Binding.Enabled() && key.Matches(msg, b.Binding) {
			next, cmd := b.Handler(m)
			return next, cmd, true
		}
	}
	return m, nil, false
}

// ShortHelp and FullHelp make the registry a help.KeyMap.
func (r *HandlerRegistry) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.Binding.Help().Desc != "" {
			out = append(out, b.Binding)
		}
	}
	return out
}

func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	short := r.ShortHelp()
	var groups [][]key.Binding
	for len(short) > 0 {
		n := 4
		if len(short) < n {
			n = len(short)
		}
		groups = append(groups, short[:n])
		short = short[n:]
	}
	return groups
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Handler:  func(m Model) (Model, tea.Cmd) { m.quitting = true; return m, tea.Quit },
		Priority: 100,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start stopwatch")),
		Handler:  func(m Model) (Model, tea.Cmd) {
			util.LogError(m.logger, "start stopwatch", m.app.Stopwatch.Start())
			return m, nil
		},
		Priority: 50,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Handler:  func(m Model) (Model, tea.Cmd) { m.app.Stopwatch.Pause(); return m, nil },
		Priority: 49,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Handler:  func(m Model) (Model, tea.Cmd) { m.app.Stopwatch.Stop(); return m, nil },
		Priority: 48,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Handler:  func(m Model) (Model, tea.Cmd) {
			util.LogError(m.logger, "reset stopwatch", m.app.Stopwatch.Reset())
			return m, nil
		},
		Priority: 47,
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler: func(m Model) (Model, tea.Cmd) {
			m.themeName = nextTheme(m.themeName)
			SetTheme(m.themeName)
			return m, nil
		},
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Handler:  func(m Model) (Model, tea.Cmd) { m.help.ShowAll = !m.help.ShowAll; return m, nil },
		Priority: 1,
	})
	return r
}
