package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Pomodoro    PomodoroConfig    `yaml:"pomodoro"`
	Environment EnvironmentConfig `yaml:"environment"`
	Theme       string            `yaml:"theme"`
	WakeLock    bool              `yaml:"wake_lock"`
	Debug       bool              `yaml:"debug"`
}

type PomodoroConfig struct {
	Element              string        `yaml:"element"`
	WorkDuration         time.Duration `yaml:"work_duration"`
	BreakDuration        time.Duration `yaml:"break_duration"`
	WorkResetText        string        `yaml:"work_reset_text"`
	BreakResetText       string        `yaml:"break_reset_text"`
	WorkCompleteMessage  string        `yaml:"work_complete_message"`
	BreakCompleteMessage string        `yaml:"break_complete_message"`
	FlashDuration        time.Duration `yaml:"flash_duration"`
}

type EnvironmentConfig struct {
	Name              string   `yaml:"name"`
	BaseURLs          BaseURLs `yaml:"base_urls"`
	LegacyProjectHost string   `yaml:"legacy_project_host"`
}

type BaseURLs struct {
	Localhost string `yaml:"localhost"`
	Staging   string `yaml:"staging"`
	Live      string `yaml:"live"`
}

func Default() *Config {
	return &Config{
		Pomodoro: PomodoroConfig{
			Element:              PomodoroElement,
			WorkDuration:         PhaseADuration,
			BreakDuration:        PhaseBDuration,
			WorkResetText:        PhaseAResetText,
			BreakResetText:       PhaseBResetText,
			WorkCompleteMessage:  PhaseACompleteMessage,
			BreakCompleteMessage: PhaseBCompleteMessage,
			FlashDuration:        FlashDuration,
		},
		Environment: EnvironmentConfig{
			Name: EnvLive,
			BaseURLs: BaseURLs{
				Localhost: "http://localhost:4321",
				Staging:   "https://staging--grovery-ar.netlify.app",
				Live:      "https://grovery-ar.netlify.app",
			},
			LegacyProjectHost: LegacyProjectHost,
		},
		Theme:    "default",
		WakeLock: true,
	}
}

// Load reads path over the defaults. A missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides settings from the process environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvVar)); v != "" {
		c.Environment.Name = v
	}
}

func (c *Config) Validate() error {
	p := c.Pomodoro
	if !wholeSeconds(p.WorkDuration) {
		return fmt.Errorf("%w: work_duration %v must be a whole number of seconds, at least 1s", ErrInvalidConfig, p.WorkDuration)
	}
	if !wholeSeconds(p.BreakDuration) {
		return fmt.Errorf("%w: break_duration %v must be a whole number of seconds, at least 1s", ErrInvalidConfig, p.BreakDuration)
	}
	if p.FlashDuration < 0 {
		return fmt.Errorf("%w: flash_duration %v is negative", ErrInvalidConfig, p.FlashDuration)
	}
	return nil
}

func wholeSeconds(d time.Duration) bool {
	return d >= time.Second && d%time.Second == 0
}
