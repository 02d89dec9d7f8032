// Package updater implements the gravity update run: per-source refresh,
// compilation of the gravity set and hand-off to the export, filter and
// restart collaborators.
package updater

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/core/ports"
	"go.trai.ch/gravity/internal/engine/freshness"
	"go.trai.ch/gravity/internal/engine/gravity"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Engine runs gravity updates. An Engine holds no per-run state and may be
// reused for several runs.
type Engine struct {
	store     ports.SourceStore
	fetcher   ports.ListFetcher
	exporter  ports.HostsExporter
	filter    ports.ListFilter
	restarter ports.ResolverRestarter
	reporter  ports.Reporter
	telemetry ports.Telemetry
	metrics   ports.Metrics
	logger    ports.Logger

	workers int
	now     func() time.Time
}

// New creates an Engine that processes sources sequentially.
func New(
	store ports.SourceStore,
	fetcher ports.ListFetcher,
	exporter ports.HostsExporter,
	filter ports.ListFilter,
	restarter ports.ResolverRestarter,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	metrics ports.Metrics,
	logger ports.Logger,
) *Engine {
	return &Engine{
		store:     store,
		fetcher:   fetcher,
		exporter:  exporter,
		filter:    filter,
		restarter: restarter,
		reporter:  reporter,
		telemetry: telemetry,
		metrics:   metrics,
		logger:    logger,
		workers:   1,
		now:       time.Now,
	}
}

// WithWorkers bounds the number of sources processed concurrently.
// Values below one are treated as one.
func (e *Engine) WithWorkers(n int) *Engine {
	e.workers = max(n, 1)
	return e
}

// WithClock replaces the clock used to stamp fetch completion times.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Options controls a single run.
type Options struct {
	// Force downloads every source regardless of its validators.
	Force bool
}

// Run refreshes every registered source and publishes the compiled set.
//
// Network and parse failures are recorded per source in the summary and never
// abort the run. Store failures, export failures and filter failures abort
// the run before the resolver is restarted; the returned error then wraps
// domain.ErrRunFailed. The resolver is restarted exactly once per successful
// run; a failing restart is logged but does not fail the run.
func (e *Engine) Run(ctx context.Context, opts Options) (domain.RunSummary, error) {
	var summary domain.RunSummary
	e.reporter.Loading()

	sources, err := e.store.Sources(ctx)
	if err != nil {
		return summary, errors.Join(domain.ErrRunFailed, err)
	}

	outcomes, err := e.processAll(ctx, sources, opts)
	summary.Outcomes = outcomes
	if err != nil {
		return summary, errors.Join(domain.ErrRunFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return summary, errors.Join(domain.ErrRunFailed, err)
	}

	for _, o := range outcomes {
		summary.Raw += o.Count
	}

	set, current, err := e.compile(ctx)
	if err != nil {
		return summary, errors.Join(domain.ErrRunFailed, err)
	}
	summary.Unique = set.Len()

	summary.Exported, err = e.publish(ctx, &set, current, &summary)
	if err != nil {
		return summary, errors.Join(domain.ErrRunFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return summary, errors.Join(domain.ErrRunFailed, err)
	}
	if err := e.restarter.RestartResolver(ctx); err != nil {
		e.logger.Error(zerr.Wrap(err, "resolver restart failed"))
	} else {
		summary.Restarted = true
	}

	e.metrics.ObserveRun(summary)
	e.reporter.Summary(summary)
	return summary, nil
}

// processAll resolves every source. Outcomes are stored by source index so the
// totals do not depend on completion order. Only store failures are returned.
func (e *Engine) processAll(ctx context.Context, sources []domain.Source, opts Options) ([]domain.SourceOutcome, error) {
	outcomes := make([]domain.SourceOutcome, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, src := range sources {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcome, err := e.process(gctx, src, opts)
			outcomes[i] = outcome
			return err
		})
	}
	return outcomes, g.Wait()
}

func (e *Engine) process(ctx context.Context, src domain.Source, opts Options) (domain.SourceOutcome, error) {
	start := e.now()
	ctx, vertex := e.telemetry.Record(ctx, src.URI())
	e.reporter.SourceStarted(src)

	outcome := domain.SourceOutcome{URI: src.URI(), Count: len(src.Domains())}
	fetchedAt := src.LastFetchedAt()

	finish := func(err error) (domain.SourceOutcome, error) {
		outcome.Elapsed = e.now().Sub(start)
		e.metrics.ObserveSource(outcome, unixOrZero(fetchedAt))
		e.reporter.SourceFinished(outcome)
		vertex.Complete(outcome.Err)
		return outcome, err
	}
	fail := func(err error) (domain.SourceOutcome, error) {
		outcome.Status = domain.StatusFailed
		outcome.Err = err
		e.logger.Warn(fmt.Sprintf("%s: %v", src.URI(), err))
		return finish(nil)
	}

	decision, err := e.decide(ctx, src, opts)
	if err != nil {
		return fail(err)
	}
	outcome.Decision = decision
	e.reporter.SourceDecided(src, decision)
	vertex.Log(fmt.Sprintf("%s (%s)", decision.Action, decision.Reason))

	if decision.Action == domain.ActionSkip {
		outcome.Status = domain.StatusSkipped
		vertex.Cached()
		return finish(nil)
	}

	res, err := e.fetcher.Fetch(ctx, src.URI())
	outcome.Malformed = res.Malformed
	if len(res.Malformed) > 0 {
		e.logger.Warn(fmt.Sprintf("%s: ignored %d malformed lines, first at %v", src.URI(), len(res.Malformed), res.Malformed[0]))
	}
	if err != nil {
		return fail(err)
	}
	// A cancelled run must not commit a list fetched just before cancellation.
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	completed := e.now()
	update := domain.SourceUpdate{
		URI:       src.URI(),
		Domains:   res.Domains,
		ETag:      cmp.Or(res.ETag, decision.ETag),
		FetchedAt: completed,
		Checksum:  res.Checksum,
	}
	if err := e.store.UpdateSource(ctx, update); err != nil {
		outcome.Status = domain.StatusFailed
		outcome.Err = err
		return finish(err)
	}

	fetchedAt = completed
	outcome.Status = domain.StatusUpdated
	outcome.Count = len(res.Domains)
	vertex.Log(fmt.Sprintf("downloaded %d domains", outcome.Count))
	return finish(nil)
}

// decide applies the freshness rules. Sources that were never fetched are
// not probed.
func (e *Engine) decide(ctx context.Context, src domain.Source, opts Options) (domain.Decision, error) {
	if opts.Force {
		return freshness.Force(src), nil
	}
	if !src.Fetched() {
		return freshness.Resolve(src, nil), nil
	}
	headers, err := e.fetcher.Probe(ctx, src.URI())
	if err != nil {
		return domain.Decision{}, err
	}
	return freshness.Resolve(src, headers), nil
}

// compile builds the gravity set from the persisted sources and stores it.
// The sources it was built from are returned alongside.
func (e *Engine) compile(ctx context.Context) (domain.CompiledSet, []domain.Source, error) {
	sources, err := e.store.Sources(ctx)
	if err != nil {
		return domain.CompiledSet{}, nil, err
	}

	set := gravity.CompileSources(sources)
	e.reporter.Compiling(set.Raw)

	if err := e.store.SetCompiledDomains(ctx, set.Sorted()); err != nil {
		return domain.CompiledSet{}, nil, err
	}
	return set, sources, nil
}

// publish exports the set, then applies the whitelist and blacklist. When the
// filters change the set, the artifact is exported again so it reflects them.
// Until that second export succeeds the artifact is unfiltered, and the
// resolver is not restarted.
func (e *Engine) publish(
	ctx context.Context,
	set *domain.CompiledSet,
	sources []domain.Source,
	summary *domain.RunSummary,
) (int, error) {
	e.reporter.Exporting(set.Len())
	exported, err := e.exporter.ExportHosts(ctx, *set)
	if err != nil {
		return 0, errors.Join(domain.ErrExportFailed, err)
	}

	result, err := e.filter.Apply(ctx, set, sources)
	if err != nil {
		return exported, errors.Join(domain.ErrFilterFailed, err)
	}
	summary.Filter = result
	e.reporter.Filtered(result)

	if result.Whitelisted+result.Blacklisted+result.Sources == 0 {
		return exported, nil
	}
	exported, err = e.exporter.ExportHosts(ctx, *set)
	if err != nil {
		return 0, errors.Join(domain.ErrExportFailed, err)
	}
	return exported, nil
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
