package ports

import "go.trai.ch/gravity/internal/core/domain"

// Metrics records gauges describing a run.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveSource records the outcome of one source.
	ObserveSource(outcome domain.SourceOutcome, fetchedAt int64)
	// ObserveRun records the totals of a finished run.
	ObserveRun(summary domain.RunSummary)
	// Flush writes the collected metrics to path; an empty path is a no-op.
	Flush(path string) error
}
