// Package cli builds the orbfield command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/orbfield/internal/canvas"
	"github.com/olivier-w/orbfield/internal/config"
	"github.com/olivier-w/orbfield/internal/fx"
	"github.com/olivier-w/orbfield/internal/logging"
	"github.com/olivier-w/orbfield/internal/ui"
)

// WindowRunner opens the desktop host and blocks until it closes.
type WindowRunner func(cfg *config.Config, log *zap.Logger, prefersDark bool) error

type options struct {
	configPath   string
	mode         string
	count        int
	spring       float64
	damping      float64
	maxSpeed     float64
	noGlow       bool
	noReflection bool
	noDepth      bool
	seed         uint64
	fps          int
	logFile      string
	verbose      bool
	watch        bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd returns the root command. runWindow backs the window
// subcommand; a nil runner leaves the subcommand out.
func NewRootCmd(runWindow WindowRunner) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "orbfield",
		Short: "A portfolio site with pointer-chasing particles, in your terminal",
		Long: `orbfield renders a small portfolio with an animated particle layer that
follows the mouse: spring orbs, bubbles, a trail, charged particles or
magnetic navigation.

Run without arguments to start the terminal app. The effect only runs on
the landing page and only when the terminal is at least 77 columns wide.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging, opts.verbose)
			if err != nil {
				return err
			}
			opts.cfg, opts.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerminal(cmd, opts)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", config.DefaultPath(), "config file")
	f.StringVarP(&opts.mode, "mode", "m", "", "effect mode: orb, bubble, trail, charged, magnet")
	f.IntVar(&opts.count, "count", 0, "number of orbs")
	f.Float64Var(&opts.spring, "spring", 0, "spring strength")
	f.Float64Var(&opts.damping, "damping", 0, "velocity damping per frame, 0-1")
	f.Float64Var(&opts.maxSpeed, "max-speed", 0, "speed cap in pixels per frame")
	f.BoolVar(&opts.noGlow, "no-glow", false, "disable the orb glow")
	f.BoolVar(&opts.noReflection, "no-reflection", false, "disable the orb reflection")
	f.BoolVar(&opts.noDepth, "no-depth", false, "disable depth scaling")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 for the clock")
	f.IntVar(&opts.fps, "fps", 0, "frames per second")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	root.Flags().BoolVarP(&opts.watch, "watch", "w", true, "apply config file edits while running")

	root.AddCommand(newConfigCmd(opts))
	if runWindow != nil {
		root.AddCommand(newWindowCmd(opts, runWindow))
	}
	return root
}

// load reads the config file and applies the flags the user set.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := o.applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag the user set and validates the
// result.
func (o *options) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("mode") {
		mode, err := fx.ParseMode(o.mode)
		if err != nil {
			return err
		}
		cfg.Effect.Mode = mode
	}
	if f.Changed("count") {
		cfg.Effect.Count = o.count
	}
	if f.Changed("spring") {
		cfg.Effect.Spring = o.spring
	}
	if f.Changed("damping") {
		cfg.Effect.Damping = o.damping
	}
	if f.Changed("max-speed") {
		cfg.Effect.MaxSpeed = o.maxSpeed
	}
	if o.noGlow {
		cfg.Effect.Glow = false
	}
	if o.noReflection {
		cfg.Effect.Reflection = false
	}
	if o.noDepth {
		cfg.Effect.Depth = false
	}
	if f.Changed("seed") {
		cfg.Effect.Seed = o.seed
	}
	if f.Changed("fps") {
		cfg.UI.FPS = o.fps
	}
	if o.logFile != "" {
		cfg.Logging.File = o.logFile
	}

	return cfg.Validate()
}

func runTerminal(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	log := opts.logger
	log.Info("starting terminal host", zap.Stringer("mode", opts.cfg.Effect.Mode))

	m := ui.New(ui.Options{
		Config:      opts.cfg,
		Logger:      log,
		Context:     ctx,
		Profile:     canvas.DetectProfile(),
		PrefersDark: lipgloss.HasDarkBackground(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	if opts.watch {
		stopWatch := watchConfig(ctx, cmd, opts, func(cfg *config.Config) {
			p.Send(ui.ConfigMsg{Config: cfg})
		})
		defer stopWatch()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal host: %w", err)
	}
	return nil
}

// watchConfig reloads the config file on change, reapplying the command
// line flags. A config directory that does not exist is not an error; there
// is nothing to edit yet.
func watchConfig(ctx context.Context, cmd *cobra.Command, opts *options, apply func(*config.Config)) (stop func()) {
	log := opts.logger
	w, err := config.NewWatcher(opts.configPath, log, func(cfg *config.Config) {
		if err := opts.applyFlags(cmd, cfg); err != nil {
			log.Warn("reloaded config rejected", zap.Error(err))
			return
		}
		apply(cfg)
	})
	if err != nil {
		log.Warn("config watch disabled", zap.Error(err))
		return func() {}
	}
	if err := w.Start(ctx); err != nil {
		log.Debug("config watch disabled", zap.Error(err))
		_ = w.Stop()
		return func() {}
	}
	return func() {
		if err := w.Stop(); err != nil {
			log.Warn("config watcher close failed", zap.Error(err))
		}
	}
}

func newWindowCmd(opts *options, run WindowRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the portfolio in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.logger.Info("starting window host",
				zap.Int("width", opts.cfg.Window.Width),
				zap.Int("height", opts.cfg.Window.Height))
			return run(opts.cfg, opts.logger, lipgloss.HasDarkBackground())
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
