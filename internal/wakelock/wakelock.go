// Package wakelock keeps the screen awake while a timer is on display.
//
// A Lock is an explicit handle: whoever acquires it owns it and must release
// it. There is no package-level lock state.
package wakelock

import (
	"context"
	"errors"
	"fmt"

	"github.com/akyairhashvil/pomoflip/internal/util"
	"go.uber.org/zap"
)

var ErrUnsupported = errors.New("wake lock not supported")

type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("wake lock %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Provider hands out wake-lock sentinels.
type Provider interface {
	Supported() bool
	Request(ctx context.Context) (Sentinel, error)
}

// Sentinel is a single granted wake lock.
type Sentinel interface {
	Release() error
	Released() bool
}

type Status struct {
	Supported bool
	Active    bool
	Released  bool
}

type Lock struct {
	provider Provider
	sentinel Sentinel
	logger   *zap.Logger
}

// Acquire requests a wake lock from p.
func Acquire(ctx context.Context, p Provider, logger *zap.Logger) (*Lock, error) {
	logger = util.OrNop(logger)
	if p == nil || !p.Supported() {
		logger.Warn("wake lock API not supported")
		return nil, ErrUnsupported
	}
	s, err := p.Request(ctx)
	if err != nil {
		logger.Error("failed to lock wake state", zap.Error(err))
		return nil, &OpError{Op: "request", Err: err}
	}
	logger.Info("screen wake state locked", zap.Bool("locked", !s.Released()))
	return &Lock{provider: p, sentinel: s, logger: logger}, nil
}

// Release gives the lock back. It is safe to call more than once and on a
// nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.sentinel == nil {
		return nil
	}
	s := l.sentinel
	l.sentinel = nil
	if s.Released() {
		return nil
	}
	if err := s.Release(); err != nil {
		return &OpError{Op: "release", Err: err}
	}
	l.logger.Info("wake lock released")
	return nil
}

func (l *Lock) Status() Status {
	if l == nil {
		return Status{}
	}
	st := Status{Supported: l.provider != nil && l.provider.Supported()}
	if l.sentinel == nil {
		st.Released = true
		return st
	}
	st.Released = l.sentinel.Released()
	st.Active = !st.Released
	return st
}
