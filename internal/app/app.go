// Package app assembles the timers and display board shared by the terminal
// UI and the headless runner.
package app

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomoflip/internal/clock"
	"github.com/akyairhashvil/pomoflip/internal/config"
	"github.com/akyairhashvil/pomoflip/internal/display"
	"github.com/akyairhashvil/pomoflip/internal/pomodoro"
	"github.com/akyairhashvil/pomoflip/internal/session"
	"github.com/akyairhashvil/pomoflip/internal/util"
	"go.uber.org/zap"
)

type App struct {
	Loop      *clock.Loop
	Board     *display.Board
	Pomodoro  *pomodoro.Coordinator
	Session   *session.Timer
	Stopwatch *session.Stopwatch
	Clock     *session.LiveClock

	pomodoroCfg pomodoro.Config
	logger      *zap.Logger
}

// Snapshot is the text of every region at one instant.
type Snapshot struct {
	Phase     pomodoro.Phase
	Timer1    string
	Timer2    string
	Message   string
	Session   string
	Stopwatch string
	Clock     string
}

func (s Snapshot) String() string {
	return fmt.Sprintf("[%s] timer1=%s timer2=%s session=%s clock=%s message=%q",
		s.Phase, s.Timer1, s.Timer2, s.Session, s.Clock, s.Message)
}

func New(cfg *config.Config, now time.Time, logger *zap.Logger) (*App, error) {
	logger = util.OrNop(logger)
	pcfg := pomodoro.FromSettings(cfg.Pomodoro)

	regions := append(pcfg.Regions(), config.SessionElement,
		session.ValuesRegion(config.StopwatchElement), config.LiveClockElement)
	a := &App{
		Loop:        clock.New(now),
		Board:       display.NewBoard(regions...),
		pomodoroCfg: pcfg,
		logger:      logger,
	}

	var err error
	if a.Pomodoro, err = pomodoro.New(a.Loop, a.Board, pcfg, logger); err != nil {
		return nil, fmt.Errorf("create pomodoro: %w", err)
	}
	if a.Session, err = session.NewTimer(a.Loop, a.Board, config.SessionElement); err != nil {
		return nil, fmt.Errorf("create session timer: %w", err)
	}
	if a.Stopwatch, err = session.NewStopwatch(a.Loop, a.Board, config.StopwatchElement); err != nil {
		return nil, fmt.Errorf("create stopwatch: %w", err)
	}
	if a.Clock, err = session.NewLiveClock(a.Loop, a.Board, config.LiveClockElement); err != nil {
		return nil, fmt.Errorf("create live clock: %w", err)
	}
	a.Pomodoro.OnPhaseChange(func(from, to pomodoro.Phase) {
		logger.Debug("hand-off", zap.Stringer("from", from), zap.Stringer("to", to))
	})
	return a, nil
}

func (a *App) Start() error {
	return a.Pomodoro.Start()
}

// AdvanceTo runs every timer callback due up to t.
func (a *App) AdvanceTo(t time.Time) {
	a.Loop.AdvanceTo(t)
}

func (a *App) Snapshot() Snapshot {
	return Snapshot{
		Phase:     a.Pomodoro.Phase(),
		Timer1:    a.Board.Get(a.pomodoroCfg.TimerRegion(pomodoro.PhaseA)),
		Timer2:    a.Board.Get(a.pomodoroCfg.TimerRegion(pomodoro.PhaseB)),
		Message:   a.Board.Get(a.pomodoroCfg.MessageRegion()),
		Session:   a.Board.Get(config.SessionElement),
		Stopwatch: a.Board.Get(session.ValuesRegion(config.StopwatchElement)),
		Clock:     a.Board.Get(config.LiveClockElement),
	}
}

func (a *App) Close() {
	a.Pomodoro.Close()
	a.Session.Stop()
	a.Stopwatch.Stop()
	a.Clock.Stop()
}
