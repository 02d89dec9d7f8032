package ports

import "go.trai.ch/gravity/internal/core/domain"

// Reporter prints human-readable run progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Loading is printed once before any source is processed.
	Loading()
	// SourceStarted announces the source about to be checked.
	SourceStarted(src domain.Source)
	// SourceDecided reports the refresh verdict for a source.
	SourceDecided(src domain.Source, decision domain.Decision)
	// SourceFinished reports the outcome of a source.
	SourceFinished(outcome domain.SourceOutcome)
	// Compiling reports the pre-deduplication total.
	Compiling(raw int)
	// Exporting reports the number of domains about to be exported.
	Exporting(unique int)
	// Filtered reports the whitelist and blacklist step.
	Filtered(result domain.FilterResult)
	// Summary prints the closing line of the run.
	Summary(summary domain.RunSummary)
}
