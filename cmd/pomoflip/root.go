package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/pomoflip/internal/app"
	"github.com/akyairhashvil/pomoflip/internal/config"
	"github.com/akyairhashvil/pomoflip/internal/environment"
	"github.com/akyairhashvil/pomoflip/internal/qr"
	"github.com/akyairhashvil/pomoflip/internal/tui"
	"github.com/akyairhashvil/pomoflip/internal/util"
	"github.com/akyairhashvil/pomoflip/internal/wakelock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type options struct {
	configPath string
	work       time.Duration
	brk        time.Duration
	theme      string
	env        string
	debug      bool
	noWakeLock bool
	headless   bool
	runFor     time.Duration
	size       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Alternating work/break countdown timers in the terminal",
		Version:       tui.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimers(cmd, opts)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName), "config file")
	pf.StringVar(&opts.env, "env", "", "environment: localhost, staging or live")
	pf.BoolVar(&opts.debug, "debug", false, "debug logging")

	f := root.Flags()
	f.DurationVar(&opts.work, "work", 0, "phase A (work) duration")
	f.DurationVar(&opts.brk, "break", 0, "phase B (break) duration")
	f.StringVar(&opts.theme, "theme", "", "theme: "+fmt.Sprint(tui.ThemeNames()))
	f.BoolVar(&opts.noWakeLock, "no-wake-lock", false, "do not keep the screen awake")
	f.BoolVar(&opts.headless, "headless", false, "print region changes instead of drawing the UI")
	f.DurationVar(&opts.runFor, "for", 0, "stop after this long (headless only)")

	root.AddCommand(newQRCmd(opts), newURLCmd(opts), newConfigCmd(opts))
	return root
}

// loadSettings layers the config file, the environment and changed flags.
func loadSettings(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	flags := cmd.Flags()
	if flags.Changed("env") {
		cfg.Environment.Name = opts.env
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if flags.Changed("work") {
		cfg.Pomodoro.WorkDuration = opts.work
	}
	if flags.Changed("break") {
		cfg.Pomodoro.BreakDuration = opts.brk
	}
	if flags.Changed("theme") {
		cfg.Theme = opts.theme
	}
	if flags.Changed("no-wake-lock") {
		cfg.WakeLock = !opts.noWakeLock
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTimers(cmd *cobra.Command, opts *options) error {
	cfg, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}
	headless := opts.headless || !term.IsTerminal(int(os.Stdout.Fd()))

	logPath := filepath.Join(util.DataDir(config.AppName), config.LogFileName)
	if headless {
		logPath = ""
	}
	logger, err := util.NewLogger(logPath, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lock := acquireWakeLock(ctx, cfg, logger)
	defer func() { util.LogError(logger, "release wake lock", lock.Release()) }()

	a, err := app.New(cfg, time.Now(), logger)
	if err != nil {
		return err
	}

	if headless {
		if opts.runFor > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opts.runFor)
			defer cancel()
		}
		return app.RunHeadless(ctx, a, cmd.OutOrStdout(), time.Second, time.Now)
	}

	if err := a.Start(); err != nil {
		return err
	}
	defer a.Close()
	model := tui.NewModel(a,
		tui.WithTheme(cfg.Theme),
		tui.WithWakeLock(lock.Status()),
		tui.WithLogger(logger))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func acquireWakeLock(ctx context.Context, cfg *config.Config, logger *zap.Logger) *wakelock.Lock {
	var provider wakelock.Provider = wakelock.NoopProvider{}
	if cfg.WakeLock {
		provider = wakelock.NewInhibitProvider(config.AppName, "countdown timer on screen")
	}
	logger.Info("wake lock API supported", zap.Bool("supported", provider.Supported()))
	lock, err := wakelock.Acquire(ctx, provider, logger)
	if err != nil {
		logger.Debug("running without wake lock", zap.Error(err))
		return nil
	}
	return lock
}

func newQRCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr <link>",
		Short: "Render a link, adapted to the current environment, as a QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			link := environment.NewResolver(cfg.Environment, nil).AdaptProjectURL(args[0])
			art, err := qr.Render(link, opts.size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			fmt.Fprint(cmd.OutOrStdout(), art)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.size, "size", string(qr.Medium), "small, medium or large")
	return cmd
}

func newURLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "url <link>...",
		Short: "Print links adapted to the current environment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			r := environment.NewResolver(cfg.Environment, nil)
			for _, raw := range args {
				fmt.Fprintln(cmd.OutOrStdout(), r.AdaptProjectURL(raw))
			}
			return nil
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.configPath); err == nil {
				return fmt.Errorf("config %s already exists", opts.configPath)
			}
			if err := config.Save(opts.configPath, config.Default()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.configPath)
			return nil
		},
	})
	return cmd
}
