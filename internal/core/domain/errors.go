package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrNetwork is returned when a probe or fetch times out, cannot connect,
	// or receives a non-success HTTP status.
	ErrNetwork = zerr.New("network error")

	// ErrParse is returned when a list body yields no usable domain entries
	// because every candidate line was malformed.
	ErrParse = zerr.New("malformed list")

	// ErrPersistence is returned when the source store cannot be read or written.
	ErrPersistence = zerr.New("source store unavailable")

	// ErrSourceNotFound is returned when an update targets a source the store does not know.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrInvalidSourceURI is returned when a source URI cannot be used for HTTP retrieval.
	ErrInvalidSourceURI = zerr.New("invalid source uri")

	// ErrStoreOpenFailed is returned when the datastore cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open source store")

	// ErrStoreReadFailed is returned when a source record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read source record")

	// ErrStoreWriteFailed is returned when a source record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write source record")

	// ErrStoreUnmarshalFailed is returned when a source record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal source record")

	// ErrStoreMarshalFailed is returned when a source record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal source record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrExportFailed is returned when the hosts artifact cannot be written.
	ErrExportFailed = zerr.New("failed to export hosts")

	// ErrFilterFailed is returned when the whitelist or blacklist cannot be applied.
	ErrFilterFailed = zerr.New("failed to apply domain filters")

	// ErrRestartFailed is returned when the resolver restart command fails.
	ErrRestartFailed = zerr.New("failed to restart resolver")

	// ErrMetricsFlushFailed is returned when the metrics textfile cannot be written.
	ErrMetricsFlushFailed = zerr.New("failed to write metrics")

	// ErrRunFailed is returned when a gravity run aborts before the restart step.
	ErrRunFailed = zerr.New("gravity run failed")
)

// ParseError describes a single list line that could not be turned into a domain entry.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}
