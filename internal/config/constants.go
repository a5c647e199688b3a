package config

import "time"

// Pomodoro defaults.
const (
	PhaseADuration = 30 * time.Second
	PhaseBDuration = 10 * time.Second
	FlashDuration  = 2000 * time.Millisecond

	PhaseAResetText = "00:00:30"
	PhaseBResetText = "00:00:10"

	PhaseACompleteMessage = "Timer 1 complete, flipping to Timer 2"
	PhaseBCompleteMessage = "Timer 2 complete, flipping back to Timer 1"
)

// Region ids, written the way the page addressed its elements.
const (
	PomodoroElement  = "#pomodoroTimerTest"
	SessionElement   = "#sessionTimer"
	StopwatchElement = "#chronoExample"
	LiveClockElement = "#LiveClock"
)

// QR code sizes in pixels.
const (
	QRSizeSmall   = 100
	QRSizeMedium  = 250
	QRSizeLarge   = 500
	QRSizeDefault = QRSizeMedium
)

// Environments.
const (
	EnvLocalhost = "localhost"
	EnvStaging   = "staging"
	EnvLive      = "live"
)

// Application settings.
const (
	AppName        = "pomoflip"
	ConfigFileName = "config.yaml"
	LogFileName    = "pomoflip.log"
	EnvVar         = "POMOFLIP_ENV"

	// LegacyProjectHost is rewritten to the local base URL during development.
	LegacyProjectHost = "grovery-ar.netlify.app"
)

// Layout constants.
const (
	// MinRegionWidth is the narrowest a region box is drawn.
	MinRegionWidth = 12

	// TargetRegionWidth is the preferred width for region boxes.
	TargetRegionWidth = 44

	// CompactModeThreshold stacks regions vertically below this width.
	CompactModeThreshold = 60

	// TruncationSuffix appended to truncated region text.
	TruncationSuffix = "..."
)
