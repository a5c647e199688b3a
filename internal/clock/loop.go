// Package clock provides a cooperative event loop with a virtual clock.
//
// A Loop is driven by exactly one goroutine. Scheduled callbacks run one at a
// time and to completion, in due order, whenever the owner advances the clock.
// Nothing in this package starts goroutines or touches wall time.
package clock

import (
	"container/heap"
	"time"
)

// Handle refers to a scheduled callback.
type Handle struct {
	loop   *Loop
	due    time.Time
	seq    uint64
	period time.Duration
	fn     func()
	index  int
}

// Cancel prevents the callback from running again. It reports whether a
// pending run was removed.
func (h *Handle) Cancel() bool {
	if h == nil || h.index < 0 {
		return false
	}
	heap.Remove(&h.loop.queue, h.index)
	return true
}

// Pending reports whether the callback is still queued.
func (h *Handle) Pending() bool {
	return h != nil && h.index >= 0
}

type Loop struct {
	now   time.Time
	seq   uint64
	queue handleQueue
}

func New(start time.Time) *Loop {
	return &Loop{now: start}
}

func (l *Loop) Now() time.Time {
	return l.now
}

// Len returns the number of pending callbacks.
func (l *Loop) Len() int {
	return len(l.queue)
}

// AfterFunc runs fn once, d after the current virtual time.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	return l.push(l.now.Add(d), 0, fn)
}

// Every runs fn every d until the returned handle is cancelled.
func (l *Loop) Every(d time.Duration, fn func()) *Handle {
	if d <= 0 {
		panic("clock: non-positive interval for Every")
	}
	return l.push(l.now.Add(d), d, fn)
}

// Advance moves the clock forward by d, running everything that falls due.
func (l *Loop) Advance(d time.Duration) {
	l.AdvanceTo(l.now.Add(d))
}

// AdvanceTo moves the clock to t. Callbacks scheduled while advancing run in
// the same call when they fall due at or before t. Moving backwards is a
// no-op.
func (l *Loop) AdvanceTo(t time.Time) {
	for len(l.queue) > 0 && !l.queue[0].due.After(t) {
		h := heap.Pop(&l.queue).(*Handle)
		l.now = h.due
		if h.period > 0 {
			h.due = h.due.Add(h.period)
			l.seq++
			h.seq = l.seq
			heap.Push(&l.queue, h)
		}
		h.fn()
	}
	if t.After(l.now) {
		l.now = t
	}
}

func (l *Loop) push(due time.Time, period time.Duration, fn func()) *Handle {
	l.seq++
	h := &Handle{loop: l, due: due, seq: l.seq, period: period, fn: fn, index: -1}
	heap.Push(&l.queue, h)
	return h
}

type handleQueue []*Handle

func (q handleQueue) Len() int { return len(q) }

func (q handleQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q handleQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *handleQueue) Push(x any) {
	h := x.(*Handle)
	h.index = len(*q)
	*q = append(*q, h)
}

func (q *handleQueue) Pop() any {
	old := *q
	n := len(old)
	h := old[n-1]
	old[n-1] = nil
	h.index = -1
	*q = old[:n-1]
	return h
}
