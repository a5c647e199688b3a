package session

import (
	"time"

	"github.com/akyairhashvil/pomoflip/internal/clock"
	"github.com/akyairhashvil/pomoflip/internal/display"
)

// LiveClockLayout is the wall-clock format written by a LiveClock.
const LiveClockLayout = "15:04:05"

// LiveClock writes the loop's current time into a region once a second.
type LiveClock struct {
	loop   *clock.Loop
	board  *display.Board
	region string
	tick   *clock.Handle
}

func NewLiveClock(loop *clock.Loop, board *display.Board, region string) (*LiveClock, error) {
	if loop == nil {
		return nil, ErrTimerUnavailable
	}
	lc := &LiveClock{loop: loop, board: board, region: region}
	lc.update()
	lc.tick = loop.Every(time.Second, lc.update)
	return lc, nil
}

func (c *LiveClock) update() {
	c.board.Set(c.region, c.String())
}

func (c *LiveClock) String() string {
	return c.loop.Now().Format(LiveClockLayout)
}

// Stop halts updates. The region keeps the last time written.
func (c *LiveClock) Stop() {
	c.tick.Cancel()
}
