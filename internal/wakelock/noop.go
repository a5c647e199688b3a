package wakelock

import "context"

// NoopProvider never supports wake locks. It is used when the feature is
// turned off.
type NoopProvider struct{}

func (NoopProvider) Supported() bool { return false }

func (NoopProvider) Request(context.Context) (Sentinel, error) { return nil, ErrUnsupported }
