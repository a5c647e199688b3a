package pomodoro

import (
	"testing"
	"time"

	"github.com/akyairhashvil/pomoflip/internal/clock"
	"github.com/akyairhashvil/pomoflip/internal/countdown"
	"github.com/akyairhashvil/pomoflip/internal/display"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newCoordinator(t *testing.T, cfg Config, board *display.Board) (*Coordinator, *clock.Loop) {
	t.Helper()
	loop := clock.New(epoch)
	if board == nil {
		board = display.NewBoard(cfg.Regions()...)
	}
	c, err := New(loop, board, cfg, nil)
	require.NoError(t, err)
	return c, loop
}

func runningCount(c *Coordinator) int {
	n := 0
	for _, p := range []Phase{PhaseA, PhaseB} {
		if c.Timer(p).State() == countdown.Running {
			n++
		}
	}
	return n
}

func TestConcreteScenario(t *testing.T) {
	cfg := DefaultConfig()
	board := display.NewBoard(cfg.Regions()...)
	c, loop := newCoordinator(t, cfg, board)
	msg := cfg.MessageRegion()

	require.NoError(t, c.Start())
	require.Equal(t, PhaseA, c.Phase())
	require.Equal(t, 30*time.Second, c.Remaining())

	loop.Advance(29 * time.Second)
	require.Equal(t, "00:00:01", board.Get(cfg.TimerRegion(PhaseA)))
	require.Empty(t, board.Get(msg))

	loop.Advance(time.Second) // t=30
	require.Equal(t, "Timer 1 complete, flipping to Timer 2", board.Get(msg))
	require.Equal(t, "00:00:30", board.Get(cfg.TimerRegion(PhaseA)))
	require.Equal(t, PhaseB, c.Phase())
	require.Equal(t, countdown.Running, c.Timer(PhaseB).State())
	require.Equal(t, 10*time.Second, c.Timer(PhaseB).Values())

	loop.Advance(1999 * time.Millisecond)
	require.Equal(t, "Timer 1 complete, flipping to Timer 2", board.Get(msg))
	loop.Advance(time.Millisecond) // t=32
	require.Empty(t, board.Get(msg))
	require.Equal(t, "00:00:08", board.Get(cfg.TimerRegion(PhaseB)))

	loop.Advance(8 * time.Second) // t=40
	require.Equal(t, "Timer 2 complete, flipping back to Timer 1", board.Get(msg))
	require.Equal(t, "00:00:10", board.Get(cfg.TimerRegion(PhaseB)))
	require.Equal(t, PhaseA, c.Phase())
	require.Equal(t, countdown.Running, c.Timer(PhaseA).State())
	require.Equal(t, 30*time.Second, c.Timer(PhaseA).Values())
	require.Equal(t, 2, c.Cycles())
}

func TestExactlyOneTimerRunsAtEverySecond(t *testing.T) {
	cases := []struct{ a, b time.Duration }{
		{30 * time.Second, 10 * time.Second},
		{time.Second, time.Second},
		{3 * time.Second, 7 * time.Second},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.PhaseADuration, cfg.PhaseBDuration = tc.a, tc.b
		c, loop := newCoordinator(t, cfg, nil)
		require.NoError(t, c.Start())

		var handoffs []Phase
		c.OnPhaseChange(func(from, to Phase) {
			require.Equal(t, from.Other(), to)
			handoffs = append(handoffs, to)
		})
		period := tc.a + tc.b
		for i := 0; i < int((4*period)/time.Second); i++ {
			loop.Advance(time.Second)
			require.Equal(t, 1, runningCount(c), "a=%v b=%v t=%ds", tc.a, tc.b, i+1)
		}
		require.Len(t, handoffs, 8)
		for i, p := range handoffs {
			if i%2 == 0 {
				require.Equal(t, PhaseB, p)
			} else {
				require.Equal(t, PhaseA, p)
			}
		}
	}
}

func TestFlashShorterThanPhaseIsNotClearedEarly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PhaseADuration, cfg.PhaseBDuration = time.Second, time.Second
	board := display.NewBoard(cfg.Regions()...)
	c, loop := newCoordinator(t, cfg, board)
	require.NoError(t, c.Start())

	loop.Advance(time.Second)
	require.Equal(t, cfg.PhaseACompleteMessage, board.Get(cfg.MessageRegion()))
	loop.Advance(time.Second)
	require.Equal(t, cfg.PhaseBCompleteMessage, board.Get(cfg.MessageRegion()))
	loop.Advance(1500 * time.Millisecond)
	require.Equal(t, cfg.PhaseACompleteMessage, board.Get(cfg.MessageRegion()))
}

func TestMissingRegionsDoNotStopAlternation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PhaseADuration, cfg.PhaseBDuration = 2*time.Second, 3*time.Second
	board := display.NewBoard(cfg.TimerRegion(PhaseB))
	c, loop := newCoordinator(t, cfg, board)
	require.NoError(t, c.Start())

	loop.Advance(2 * time.Second)
	require.Equal(t, PhaseB, c.Phase())
	loop.Advance(3 * time.Second)
	require.Equal(t, PhaseA, c.Phase())
	require.Equal(t, cfg.PhaseBResetText, board.Get(cfg.TimerRegion(PhaseB)))
	require.False(t, board.Has(cfg.MessageRegion()))
	require.Equal(t, 2, c.Cycles())
}

func TestDetachedMessageRegionTolerated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PhaseADuration = time.Second
	board := display.NewBoard(cfg.Regions()...)
	c, loop := newCoordinator(t, cfg, board)
	require.NoError(t, c.Start())

	loop.Advance(time.Second)
	board.Detach(cfg.MessageRegion())
	require.NotPanics(t, func() { loop.Advance(3 * time.Second) })
	require.Equal(t, PhaseB, c.Phase())
}

func TestInvalidDurationsRejected(t *testing.T) {
	loop := clock.New(epoch)
	for _, d := range []time.Duration{0, -time.Second, 999 * time.Millisecond, 1500 * time.Millisecond} {
		cfg := DefaultConfig()
		cfg.PhaseBDuration = d
		c, err := New(loop, display.NewBoard(), cfg, nil)
		require.ErrorIs(t, err, ErrInvalidDuration)
		require.Nil(t, c)
	}
}

func TestNilLoopReturnsAbsentAndLogsOnce(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	c, err := New(nil, display.NewBoard(), DefaultConfig(), zap.New(core))
	require.ErrorIs(t, err, ErrTimerUnavailable)
	require.Nil(t, c)
	require.Equal(t, 1, logs.Len())
}

func TestStartIsIdempotent(t *testing.T) {
	c, loop := newCoordinator(t, DefaultConfig(), nil)
	require.NoError(t, c.Start())
	loop.Advance(5 * time.Second)
	require.NoError(t, c.Start())
	require.Equal(t, 25*time.Second, c.Remaining())
	require.Equal(t, 1, runningCount(c))
}

func TestCloseCancelsEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PhaseADuration = time.Second
	board := display.NewBoard(cfg.Regions()...)
	c, loop := newCoordinator(t, cfg, board)
	require.NoError(t, c.Start())
	loop.Advance(time.Second)
	require.NotEmpty(t, board.Get(cfg.MessageRegion()))

	c.Close()
	c.Close()
	require.Equal(t, 0, loop.Len())
	require.Equal(t, 0, runningCount(c))
	require.ErrorIs(t, c.Start(), ErrClosed)

	loop.Advance(time.Minute)
	require.Equal(t, cfg.PhaseACompleteMessage, board.Get(cfg.MessageRegion()))
}

func TestCloseFromPhaseChangeStopsHandOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PhaseADuration = time.Second
	c, loop := newCoordinator(t, cfg, nil)
	c.OnPhaseChange(func(from, to Phase) {
		c.Close()
	})
	require.NoError(t, c.Start())
	loop.Advance(time.Second)

	require.Equal(t, 0, runningCount(c))
	require.Equal(t, countdown.Stopped, c.Timer(PhaseB).State())
	require.Equal(t, 0, loop.Len())
	loop.Advance(time.Minute)
	require.Equal(t, 1, c.Cycles())
}

func TestProgress(t *testing.T) {
	c, loop := newCoordinator(t, DefaultConfig(), nil)
	require.Zero(t, c.Progress())
	require.NoError(t, c.Start())
	require.Zero(t, c.Progress())
	loop.Advance(15 * time.Second)
	require.InDelta(t, 0.5, c.Progress(), 1e-9)
	loop.Advance(20 * time.Second) // 5s into phase B
	require.InDelta(t, 0.5, c.Progress(), 1e-9)
}

func TestFromSettingsAndRegions(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "#pomodoroTimerTest .timer1", cfg.TimerRegion(PhaseA))
	require.Equal(t, "#pomodoroTimerTest .timer2", cfg.TimerRegion(PhaseB))
	require.Equal(t, "#pomodoroTimerTest .message", cfg.MessageRegion())
	require.Equal(t, "B", PhaseA.Other().String())
}
