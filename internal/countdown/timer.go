// Package countdown implements a one-second precision timer that counts up or
// down on a clock.Loop and notifies subscribers of its progress.
package countdown

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomoflip/internal/clock"
)

var (
	ErrNoLoop          = errors.New("timer loop unavailable")
	ErrInvalidDuration = errors.New("countdown start value must be positive")
)

// Precision is the tick period of every Timer.
const Precision = time.Second

type Event int

const (
	EventSecondsUpdated Event = iota
	EventStarted
	EventStopped
	EventReset
	EventTargetAchieved
)

func (e Event) String() string {
	switch e {
	case EventSecondsUpdated:
		return "secondsUpdated"
	case EventStarted:
		return "started"
	case EventStopped:
		return "stopped"
	case EventReset:
		return "reset"
	case EventTargetAchieved:
		return "targetAchieved"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

type State int

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// StartOptions configures a fresh start. StartValues is truncated to whole
// seconds.
type StartOptions struct {
	Countdown   bool
	StartValues time.Duration
}

type listener struct {
	id int
	fn func()
}

type Timer struct {
	loop      *clock.Loop
	opts      StartOptions
	value     time.Duration
	state     State
	tick      *clock.Handle
	listeners map[Event][]listener
	nextID    int
}

func New(loop *clock.Loop) (*Timer, error) {
	if loop == nil {
		return nil, ErrNoLoop
	}
	return &Timer{loop: loop, listeners: make(map[Event][]listener)}, nil
}

// Start begins a stopped timer from opts, or resumes a paused one (opts is
// ignored then). Starting a running timer does nothing.
func (t *Timer) Start(opts StartOptions) error {
	switch t.state {
	case Running:
		return nil
	case Paused:
		t.run()
		t.emit(EventStarted)
		return nil
	}
	opts.StartValues = opts.StartValues.Truncate(Precision)
	if opts.Countdown && opts.StartValues <= 0 {
		return ErrInvalidDuration
	}
	if opts.StartValues < 0 {
		opts.StartValues = 0
	}
	t.opts = opts
	t.value = opts.StartValues
	t.run()
	t.emit(EventStarted)
	return nil
}

func (t *Timer) Pause() {
	if t.state != Running {
		return
	}
	t.tick.Cancel()
	t.tick = nil
	t.state = Paused
}

// Stop halts the timer and clears its value.
func (t *Timer) Stop() {
	if t.state == Stopped {
		return
	}
	t.halt()
	t.value = 0
	t.emit(EventStopped)
}

// Reset restarts the timer from the options of its last start.
func (t *Timer) Reset() error {
	if t.opts.Countdown && t.opts.StartValues <= 0 {
		return ErrInvalidDuration
	}
	t.halt()
	t.value = t.opts.StartValues
	t.run()
	t.emit(EventReset)
	return nil
}

func (t *Timer) State() State {
	return t.state
}

func (t *Timer) Values() time.Duration {
	return t.value
}

func (t *Timer) IsCountdown() bool {
	return t.opts.Countdown
}

// Target is the start value of the last countdown, or zero for a count-up.
func (t *Timer) Target() time.Duration {
	if !t.opts.Countdown {
		return 0
	}
	return t.opts.StartValues
}

// String renders the current value as HH:MM:SS.
func (t *Timer) String() string {
	return FormatClock(t.value)
}

// On subscribes fn to ev and returns a func that removes the subscription.
func (t *Timer) On(ev Event, fn func()) func() {
	t.nextID++
	id := t.nextID
	t.listeners[ev] = append(t.listeners[ev], listener{id: id, fn: fn})
	return func() {
		ls := t.listeners[ev]
		for i, l := range ls {
			if l.id == id {
				t.listeners[ev] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

func (t *Timer) run() {
	t.state = Running
	t.tick = t.loop.Every(Precision, t.onTick)
}

func (t *Timer) halt() {
	if t.tick != nil {
		t.tick.Cancel()
		t.tick = nil
	}
	t.state = Stopped
}

func (t *Timer) onTick() {
	if !t.opts.Countdown {
		t.value += Precision
		t.emit(EventSecondsUpdated)
		return
	}
	t.value -= Precision
	if t.value > 0 {
		t.emit(EventSecondsUpdated)
		return
	}
	// Stopped before listeners hear about it, so a handler may restart us.
	t.value = 0
	t.halt()
	t.emit(EventSecondsUpdated)
	t.emit(EventTargetAchieved)
}

func (t *Timer) emit(ev Event) {
	ls := append([]listener(nil), t.listeners[ev]...)
	for _, l := range ls {
		l.fn()
	}
}

// FormatClock renders d as HH:MM:SS, clamping negatives to zero.
func FormatClock(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
