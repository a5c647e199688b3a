// Package pomodoro alternates two countdown timers. When one phase reaches
// zero it flashes a message, resets its own region and hands off to the
// other phase, forever.
//
// Everything runs on a single clock.Loop. The active Phase is tracked
// explicitly and every timer callback checks it, so at most one timer counts
// down at any moment regardless of the order callbacks were registered in.
package pomodoro

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomoflip/internal/clock"
	"github.com/akyairhashvil/pomoflip/internal/config"
	"github.com/akyairhashvil/pomoflip/internal/countdown"
	"github.com/akyairhashvil/pomoflip/internal/display"
	"github.com/akyairhashvil/pomoflip/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTimerUnavailable = errors.New("timer capability not available")
	ErrInvalidDuration  = errors.New("phase duration must be at least one second")
	ErrClosed           = errors.New("coordinator closed")
)

type Phase int

const (
	PhaseA Phase = iota
	PhaseB
)

func (p Phase) Other() Phase {
	if p == PhaseA {
		return PhaseB
	}
	return PhaseA
}

func (p Phase) String() string {
	if p == PhaseA {
		return "A"
	}
	return "B"
}

type Config struct {
	// Element prefixes the region ids: "<Element> .timer1" and so on.
	Element string

	PhaseADuration time.Duration
	PhaseBDuration time.Duration

	PhaseAResetText string
	PhaseBResetText string

	PhaseACompleteMessage string
	PhaseBCompleteMessage string

	// FlashDuration is how long a completion message stays up. Zero means
	// config.FlashDuration.
	FlashDuration time.Duration
}

// DefaultConfig mirrors the stock 30s/10s demo pairing.
func DefaultConfig() Config {
	return Config{
		Element:               config.PomodoroElement,
		PhaseADuration:        config.PhaseADuration,
		PhaseBDuration:        config.PhaseBDuration,
		PhaseAResetText:       config.PhaseAResetText,
		PhaseBResetText:       config.PhaseBResetText,
		PhaseACompleteMessage: config.PhaseACompleteMessage,
		PhaseBCompleteMessage: config.PhaseBCompleteMessage,
		FlashDuration:         config.FlashDuration,
	}
}

// FromSettings maps the file-level settings onto a Config.
func FromSettings(p config.PomodoroConfig) Config {
	return Config{
		Element:               p.Element,
		PhaseADuration:        p.WorkDuration,
		PhaseBDuration:        p.BreakDuration,
		PhaseAResetText:       p.WorkResetText,
		PhaseBResetText:       p.BreakResetText,
		PhaseACompleteMessage: p.WorkCompleteMessage,
		PhaseBCompleteMessage: p.BreakCompleteMessage,
		FlashDuration:         p.FlashDuration,
	}
}

// TimerRegion returns the display region id for phase p.
func (c Config) TimerRegion(p Phase) string {
	if p == PhaseA {
		return c.Element + " .timer1"
	}
	return c.Element + " .timer2"
}

func (c Config) MessageRegion() string {
	return c.Element + " .message"
}

// Regions lists every region the coordinator writes to.
func (c Config) Regions() []string {
	return []string{c.TimerRegion(PhaseA), c.TimerRegion(PhaseB), c.MessageRegion()}
}

func (c Config) Duration(p Phase) time.Duration {
	if p == PhaseA {
		return c.PhaseADuration
	}
	return c.PhaseBDuration
}

func (c Config) resetText(p Phase) string {
	if p == PhaseA {
		return c.PhaseAResetText
	}
	return c.PhaseBResetText
}

func (c Config) completeMessage(p Phase) string {
	if p == PhaseA {
		return c.PhaseACompleteMessage
	}
	return c.PhaseBCompleteMessage
}

func (c Config) validate() error {
	for _, p := range []Phase{PhaseA, PhaseB} {
		d := c.Duration(p)
		if d < countdown.Precision || d%countdown.Precision != 0 {
			return fmt.Errorf("%w: phase %s is %v, want whole seconds", ErrInvalidDuration, p, d)
		}
	}
	return nil
}

type Coordinator struct {
	id      string
	loop    *clock.Loop
	board   *display.Board
	cfg     Config
	logger  *zap.Logger
	timers  [2]*countdown.Timer
	phase   Phase
	started bool
	closed  bool
	cycles  int
	clear   *clock.Handle
	unsubs  []func()
	onPhase []func(from, to Phase)
}

// New wires two timers to board. A nil loop means no timer capability: the
// error is logged once and nil is returned.
func New(loop *clock.Loop, board *display.Board, cfg Config, logger *zap.Logger) (*Coordinator, error) {
	logger = util.OrNop(logger)
	if loop == nil {
		logger.Error("timer library not available")
		return nil, ErrTimerUnavailable
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.FlashDuration <= 0 {
		cfg.FlashDuration = config.FlashDuration
	}
	id := uuid.NewString()
	c := &Coordinator{
		id:     id,
		loop:   loop,
		board:  board,
		cfg:    cfg,
		logger: logger.With(zap.String("coordinator", id)),
	}
	for _, p := range []Phase{PhaseA, PhaseB} {
		t, err := countdown.New(loop)
		if err != nil {
			logger.Error("timer library not available", zap.Error(err))
			return nil, ErrTimerUnavailable
		}
		c.timers[p] = t
		c.wire(p)
		board.Set(cfg.TimerRegion(p), t.String())
	}
	return c, nil
}

func (c *Coordinator) wire(p Phase) {
	t := c.timers[p]
	c.unsubs = append(c.unsubs,
		t.On(countdown.EventSecondsUpdated, func() {
			if c.phase != p {
				return
			}
			c.board.Set(c.cfg.TimerRegion(p), t.String())
		}),
		t.On(countdown.EventTargetAchieved, func() {
			c.complete(p)
		}),
	)
}

// Start begins phase A. Later calls are no-ops.
func (c *Coordinator) Start() error {
	if c.closed {
		return ErrClosed
	}
	if c.started {
		return nil
	}
	c.started = true
	c.phase = PhaseA
	c.logger.Info("pomodoro started",
		zap.Duration("phase_a", c.cfg.PhaseADuration),
		zap.Duration("phase_b", c.cfg.PhaseBDuration))
	return c.startPhase(PhaseA)
}

func (c *Coordinator) startPhase(p Phase) error {
	err := c.timers[p].Start(countdown.StartOptions{Countdown: true, StartValues: c.cfg.Duration(p)})
	if err != nil {
		return fmt.Errorf("start phase %s: %w", p, err)
	}
	return nil
}

func (c *Coordinator) complete(p Phase) {
	if c.closed || c.phase != p {
		return
	}
	c.flash(c.cfg.completeMessage(p))
	c.board.Set(c.cfg.TimerRegion(p), c.cfg.resetText(p))

	next := p.Other()
	c.phase = next
	c.cycles++
	c.logger.Info("phase complete", zap.Stringer("phase", p), zap.Int("cycles", c.cycles))
	for _, fn := range c.onPhase {
		fn(p, next)
	}
	// An observer may have closed the coordinator.
	if c.closed {
		return
	}
	if err := c.startPhase(next); err != nil {
		util.LogError(c.logger, "hand-off failed", err)
	}
}

// flash shows text in the message region until FlashDuration passes. A newer
// flash replaces the pending clear.
func (c *Coordinator) flash(text string) {
	region := c.board.Region(c.cfg.MessageRegion())
	if region == nil {
		return
	}
	region.Set(text)
	c.clear.Cancel()
	c.clear = c.loop.AfterFunc(c.cfg.FlashDuration, func() {
		region.Set("")
		c.clear = nil
	})
}

// OnPhaseChange registers fn to run after every hand-off.
func (c *Coordinator) OnPhaseChange(fn func(from, to Phase)) {
	c.onPhase = append(c.onPhase, fn)
}

// Phase reports the phase currently counting down.
func (c *Coordinator) Phase() Phase {
	return c.phase
}

// Cycles counts completed phases.
func (c *Coordinator) Cycles() int {
	return c.cycles
}

func (c *Coordinator) Started() bool {
	return c.started
}

func (c *Coordinator) ID() string {
	return c.id
}

func (c *Coordinator) Config() Config {
	return c.cfg
}

// Timer exposes the timer behind p for read-only use (state, remaining).
func (c *Coordinator) Timer(p Phase) *countdown.Timer {
	return c.timers[p]
}

// Remaining is the time left in the active phase.
func (c *Coordinator) Remaining() time.Duration {
	return c.timers[c.phase].Values()
}

// Progress is the elapsed fraction of the active phase, in [0, 1].
func (c *Coordinator) Progress() float64 {
	total := c.cfg.Duration(c.phase)
	if !c.started || total <= 0 {
		return 0
	}
	done := 1 - float64(c.Remaining())/float64(total)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}

// Close stops both timers and cancels a pending message clear.
func (c *Coordinator) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.clear.Cancel()
	c.clear = nil
	for _, off := range c.unsubs {
		off()
	}
	c.unsubs = nil
	for _, t := range c.timers {
		t.Stop()
	}
	c.logger.Info("pomodoro closed", zap.Int("cycles", c.cycles))
}
