// Package session provides the count-up session timer and the stopwatch.
package session

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/pomoflip/internal/clock"
	"github.com/akyairhashvil/pomoflip/internal/countdown"
	"github.com/akyairhashvil/pomoflip/internal/display"
)

var ErrTimerUnavailable = errors.New("timer capability not available")

// Timer counts up from the moment it is created and mirrors its value into a
// region every second.
type Timer struct {
	timer  *countdown.Timer
	region string
}

func NewTimer(loop *clock.Loop, board *display.Board, region string) (*Timer, error) {
	t, err := countdown.New(loop)
	if err != nil {
		return nil, ErrTimerUnavailable
	}
	st := &Timer{timer: t, region: region}
	t.On(countdown.EventSecondsUpdated, func() {
		board.Set(region, t.String())
	})
	if err := t.Start(countdown.StartOptions{}); err != nil {
		return nil, err
	}
	board.Set(region, t.String())
	return st, nil
}

func (s *Timer) Elapsed() string {
	return s.timer.String()
}

func (s *Timer) Stop() {
	s.timer.Stop()
}

// Stopwatch is a count-up timer driven by start, pause, stop and reset
// controls. Its value is mirrored into a "<element> .values" region. Stop
// leaves the last value on display.
type Stopwatch struct {
	timer  *countdown.Timer
	board  *display.Board
	region string
}

// ValuesRegion returns the region id a stopwatch rooted at element writes to.
func ValuesRegion(element string) string {
	return element + " .values"
}

func NewStopwatch(loop *clock.Loop, board *display.Board, element string) (*Stopwatch, error) {
	t, err := countdown.New(loop)
	if err != nil {
		return nil, ErrTimerUnavailable
	}
	sw := &Stopwatch{timer: t, board: board, region: ValuesRegion(element)}
	for _, ev := range []countdown.Event{countdown.EventSecondsUpdated, countdown.EventStarted, countdown.EventReset} {
		t.On(ev, sw.refresh)
	}
	sw.refresh()
	return sw, nil
}

func (s *Stopwatch) refresh() {
	s.board.Set(s.region, s.timer.String())
}

func (s *Stopwatch) Start() error {
	if err := s.timer.Start(countdown.StartOptions{}); err != nil {
		return fmt.Errorf("start stopwatch: %w", err)
	}
	return nil
}

func (s *Stopwatch) Pause() {
	s.timer.Pause()
}

func (s *Stopwatch) Stop() {
	s.timer.Stop()
}

// Reset stops the stopwatch and starts it again from zero.
func (s *Stopwatch) Reset() error {
	s.timer.Stop()
	return s.Start()
}

func (s *Stopwatch) State() countdown.State {
	return s.timer.State()
}

func (s *Stopwatch) String() string {
	return s.timer.String()
}
