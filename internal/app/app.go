// Package app implements the application layer for gravity.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"go.trai.ch/gravity/internal/adapters/hosts"              //nolint:depguard // Wired in app layer
	"go.trai.ch/gravity/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gravity/internal/adapters/listfilter"         //nolint:depguard // Wired in app layer
	"go.trai.ch/gravity/internal/adapters/remote"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gravity/internal/adapters/restart"            //nolint:depguard // Wired in app layer
	"go.trai.ch/gravity/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports"
	"go.trai.ch/gravity/internal/engine/updater"
	"go.trai.ch/gravity/internal/tui"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.StoreOpener
	reporter     ports.Reporter
	telemetry    ports.Telemetry
	metrics      ports.Metrics
	logger       ports.Logger

	stdout     io.Writer
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.StoreOpener,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	metrics ports.Metrics,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		reporter:     reporter,
		telemetry:    telemetry,
		metrics:      metrics,
		logger:       logger,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions sets the Bubble Tea program options used by interactive updates.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput sets where the progress report of an interactive update is
// printed once the live view closes.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// UpdateOptions configures a gravity update.
type UpdateOptions struct {
	ConfigPath string
	Force      bool
	// Interactive shows a live view of the sources while the run progresses.
	Interactive bool
}

// Update loads the configuration, seeds newly configured sources and runs the
// update engine against the configured store.
func (a *App) Update(ctx context.Context, opts UpdateOptions) (domain.RunSummary, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.RunSummary{}, zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.opener.Open(cfg.StorePath)
	if err != nil {
		return domain.RunSummary{}, err
	}
	defer a.closeStore(store)

	added, err := store.Register(ctx, cfg.Sources)
	if err != nil {
		return domain.RunSummary{}, zerr.Wrap(err, "failed to register sources")
	}
	if added > 0 {
		a.logger.Info(fmt.Sprintf("registered %d new sources", added))
	}
	removed, err := store.Prune(ctx, cfg.Sources)
	if err != nil {
		return domain.RunSummary{}, zerr.Wrap(err, "failed to prune sources")
	}
	if removed > 0 {
		a.logger.Info(fmt.Sprintf("removed %d sources no longer configured", removed))
	}

	if opts.Interactive {
		return a.runInteractive(ctx, cfg, store, opts)
	}
	return a.run(ctx, cfg, store, opts, a.reporter, a.telemetry)
}

func (a *App) run(
	ctx context.Context,
	cfg domain.Config,
	store ports.SourceStore,
	opts UpdateOptions,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
) (domain.RunSummary, error) {
	engine := updater.New(
		store,
		remote.NewClient(cfg.Timeout, remote.WithUserAgent(cfg.UserAgent)),
		hosts.NewExporter(cfg.ExportPath, cfg.BlockAddress),
		listfilter.New(cfg.Whitelist, cfg.Blacklist),
		restart.NewCommand(cfg.Restart, a.logger),
		reporter,
		telemetry,
		a.metrics,
		a.logger,
	).WithWorkers(cfg.Workers)

	summary, err := engine.Run(ctx, updater.Options{Force: opts.Force})
	if err != nil {
		return summary, err
	}

	if err := a.metrics.Flush(cfg.MetricsPath); err != nil {
		a.logger.Error(err)
	}
	return summary, nil
}

// runInteractive records the run on a feed rendered by the live view. The
// progress report is buffered and printed after the view closes. Quitting the
// view cancels the run.
func (a *App) runInteractive(
	ctx context.Context,
	cfg domain.Config,
	store ports.SourceStore,
	opts UpdateOptions,
) (domain.RunSummary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	feed := tui.NewFeed()
	recorder := progrock.NewRecorder(feed)
	var report bytes.Buffer

	viewDone := make(chan error, 1)
	go func() {
		err := tui.Run(ctx, feed, a.teaOptions...)
		cancel()
		viewDone <- err
	}()

	summary, err := a.run(ctx, cfg, store, opts, linear.NewReporter(&report), recorder)
	if cerr := recorder.Close(); cerr != nil {
		a.logger.Error(zerr.Wrap(cerr, "failed to close live view feed"))
	}
	if verr := <-viewDone; verr != nil {
		err = errors.Join(err, zerr.Wrap(verr, "live view failed"))
	}

	_, _ = io.Copy(a.stdout, &report)
	return summary, err
}

// Sources lists the sources persisted in the configured store.
func (a *App) Sources(ctx context.Context, configPath string) ([]domain.Source, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.opener.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	defer a.closeStore(store)

	return store.Sources(ctx)
}

// Close flushes the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) closeStore(store ports.SourceStore) {
	if err := store.Close(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to close source store"))
	}
}
