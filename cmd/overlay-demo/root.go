// ABOUTME: Cobra root command: loads settings, redirects logs, runs the program and the config watcher
// ABOUTME: The program and watcher share an errgroup; quitting the program stops the watcher

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mauromedda/tui-overlay/internal/config"
	"github.com/mauromedda/tui-overlay/internal/log"
	"github.com/mauromedda/tui-overlay/pkg/teahost"
)

// ErrNoTTY is returned when stdin or stdout is not a terminal.
var ErrNoTTY = errors.New("overlay-demo needs an interactive terminal")

type options struct {
	projectRoot string
	theme       string
	logLevel    string
	logFile     string
	noWatch     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "overlay-demo",
		Short: "Interactive demo of terminal overlay widgets",
		Long: `overlay-demo renders a scrollable page with tooltips, a busy indicator and a
floating window. Click links to show their tooltips, drag the window by its
title bar or edges, and edit the config file to see settings reload live.`,
		Version:       version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cwd, _ := os.Getwd()
	f := cmd.Flags()
	f.StringVar(&opts.projectRoot, "project", cwd, "project root holding .tui-overlay/config.yaml")
	f.StringVar(&opts.theme, "theme", "", "theme name or YAML file (overrides config)")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	f.StringVar(&opts.logFile, "log-file", config.LogFile(), "where logs go while the demo runs")
	f.BoolVar(&opts.noWatch, "no-watch", false, "do not reload settings when config files change")
	return cmd
}

func run(ctx context.Context, opts options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTTY
	}

	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	closeLog, err := redirectLog(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := settings.ApplyGlobals(config.GlobalDir()); err != nil {
		return err
	}

	doc := newDocument()
	th := teahost.New(doc)
	sc := newScene(th, doc, settings)
	defer sc.dispose()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return teahost.Run(ctx, teahost.NewModel(th, sc.keys), func(p *tea.Program) {
			if !opts.noWatch {
				g.Go(func() error { return watch(ctx, opts, p, sc) })
			}
		})
	})
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadSettings merges config files and applies flag overrides.
func loadSettings(opts options) (*config.Settings, error) {
	s, err := config.Load(opts.projectRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.theme != "" {
		s.Theme = opts.theme
	}
	if opts.logLevel != "" {
		s.LogLevel = opts.logLevel
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

func redirectLog(path string) (func(), error) {
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// watch reloads settings on config changes and hands them to the program.
// A missing config directory only disables reloading.
func watch(ctx context.Context, opts options, p *tea.Program, sc *scene) error {
	w := config.NewWatcher(config.Files(opts.projectRoot), func(path string) {
		s, err := loadSettings(opts)
		if err != nil {
			log.Warn("reload after %s changed: %v", path, err)
			return
		}
		log.Info("settings reloaded from %s", path)
		p.Send(teahost.Do(func() { sc.reload(s) }))
	})
	if err := w.Run(ctx); err != nil {
		log.Warn("config hot reload disabled: %v", err)
	}
	return nil
}
