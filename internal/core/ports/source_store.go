package ports

import (
	"context"

	"go.trai.ch/gravity/internal/core/domain"
)

// SourceStore persists per-list metadata, domain bodies and the compiled gravity list.
//
//go:generate go run go.uber.org/mock/mockgen -source=source_store.go -destination=mocks/mock_source_store.go -package=mocks
type SourceStore interface {
	// Sources returns every registered source in registration order.
	Sources(ctx context.Context) ([]domain.Source, error)

	// Register adds sources that are not yet known. Known URIs are left untouched.
	// It returns how many sources were added.
	Register(ctx context.Context, uris []string) (int, error)

	// Prune removes every source whose URI is not in keep and returns how
	// many were removed.
	Prune(ctx context.Context, keep []string) (int, error)

	// UpdateSource atomically replaces the domains, entity-tag, fetch time and
	// checksum of one source. Concurrent updates of the same URI are serialized.
	UpdateSource(ctx context.Context, update domain.SourceUpdate) error

	// CompiledDomains returns the compiled list persisted by the last run.
	CompiledDomains(ctx context.Context) ([]string, error)

	// SetCompiledDomains replaces the persisted compiled list.
	SetCompiledDomains(ctx context.Context, domains []string) error

	// Close releases the underlying storage.
	Close() error
}

// StoreOpener opens the SourceStore located at a configured path.
type StoreOpener interface {
	Open(path string) (SourceStore, error)
}
