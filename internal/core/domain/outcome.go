package domain

import "time"

// SourceStatus is the per-run result of processing one source.
type SourceStatus string

const (
	// StatusSkipped indicates the cached list was kept.
	StatusSkipped SourceStatus = "skipped"
	// StatusUpdated indicates the list was fetched and persisted.
	StatusUpdated SourceStatus = "updated"
	// StatusFailed indicates the source could not be refreshed this run.
	StatusFailed SourceStatus = "failed"
)

// SourceOutcome is the immutable result computed for one source during a run.
type SourceOutcome struct {
	URI       string
	Decision  Decision
	Status    SourceStatus
	Count     int
	Malformed []*ParseError
	Err       error
	Elapsed   time.Duration
}

// FilterResult reports what the whitelist and blacklist step changed.
type FilterResult struct {
	Whitelisted int
	Blacklisted int
	Sources     int
}

// RunSummary is the report of a complete gravity run.
type RunSummary struct {
	Outcomes  []SourceOutcome
	Raw       int
	Unique    int
	Exported  int
	Filter    FilterResult
	Restarted bool
}

// Failed returns the outcomes of sources that could not be refreshed.
func (s RunSummary) Failed() []SourceOutcome {
	var failed []SourceOutcome
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// Fetched returns how many sources were downloaded during the run.
func (s RunSummary) Fetched() int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == StatusUpdated {
			n++
		}
	}
	return n
}
