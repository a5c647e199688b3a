package wakelock

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"sync"
)

const defaultInhibitBinary = "systemd-inhibit"

// InhibitProvider holds a systemd idle inhibitor for as long as the lock is
// held.
type InhibitProvider struct {
	Binary string
	Who    string
	Why    string

	lookPath func(string) (string, error)
}

func NewInhibitProvider(who, why string) *InhibitProvider {
	return &InhibitProvider{Binary: defaultInhibitBinary, Who: who, Why: why, lookPath: exec.LookPath}
}

func (p *InhibitProvider) binary() (string, error) {
	look := p.lookPath
	if look == nil {
		look = exec.LookPath
	}
	name := p.Binary
	if name == "" {
		name = defaultInhibitBinary
	}
	return look(name)
}

// args blocks idle handling only. Suspend stays under the user's control.
func (p *InhibitProvider) args() []string {
	return []string{
		"--what=idle",
		"--mode=block",
		"--who=" + p.Who,
		"--why=" + p.Why,
		"sleep", "infinity",
	}
}

func (p *InhibitProvider) Supported() bool {
	_, err := p.binary()
	return err == nil
}

func (p *InhibitProvider) Request(ctx context.Context) (Sentinel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := p.binary()
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(path, p.args()...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	s := &processSentinel{cmd: cmd, done: make(chan struct{})}
	go s.wait()
	return s, nil
}

type processSentinel struct {
	cmd  *exec.Cmd
	done chan struct{}

	mu       sync.Mutex
	released bool
}

func (s *processSentinel) wait() {
	_ = s.cmd.Wait()
	s.mu.Lock()
	s.released = true
	s.mu.Unlock()
	close(s.done)
}

func (s *processSentinel) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

func (s *processSentinel) Release() error {
	if s.Released() {
		return nil
	}
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	<-s.done
	return nil
}
